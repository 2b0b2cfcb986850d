package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelgeo/assets"
	"github.com/milk9111/levelgeo/common"
)

const placeholderSize = 64

// Loader loads images from the embedded assets or the filesystem and caches
// them by path. It implements common.ImageLoader.
type Loader struct {
	// Placeholder substitutes a magenta image for missing files instead of
	// failing the load.
	Placeholder bool
	// Dirs are searched, in order, after the embedded assets.
	Dirs []string

	images registry
}

func NewLoader(placeholder bool, dirs ...string) *Loader {
	return &Loader{
		Placeholder: placeholder,
		Dirs:        dirs,
		images:      registry{},
	}
}

// LoadImage returns the cached image for path, loading it on first use.
func (l *Loader) LoadImage(path string) (common.Texture, error) {
	if path == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if l.images == nil {
		l.images = registry{}
	}
	if img := l.images.get(path); img != nil {
		return img, nil
	}

	img, err := l.load(path)
	if err != nil {
		if !l.Placeholder {
			return nil, err
		}
		log.Printf("render: %v; using placeholder", err)
		img = ebiten.NewImage(placeholderSize, placeholderSize)
		img.Fill(color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff})
	}
	l.images.register(path, img)
	return img, nil
}

func (l *Loader) load(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	src, err := l.decodeFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(src), nil
}

func (l *Loader) decode(path string) (image.Image, error) {
	if img, err := assets.DecodeImage(path); err == nil {
		return img, nil
	}
	return l.decodeFile(path)
}

func (l *Loader) decodeFile(path string) (image.Image, error) {
	tried := []string{path, filepath.Join("assets", path)}
	for _, dir := range l.Dirs {
		tried = append(tried, filepath.Join(dir, path))
	}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode image %s: %w", p, err)
		}
		return im, nil
	}
	return nil, fmt.Errorf("render: failed to load image %s", path)
}

// Headless checks that images resolve and decode without creating GPU
// images. The texture it returns is the path itself.
type Headless struct {
	Dirs []string
}

func (h Headless) LoadImage(path string) (common.Texture, error) {
	l := Loader{Dirs: h.Dirs}
	if _, err := l.decode(path); err != nil {
		return nil, err
	}
	return path, nil
}
