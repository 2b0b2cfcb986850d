package background

import (
	"fmt"
	"math"

	"github.com/milk9111/levelgeo/common"
)

// Spec describes a parallax background in level data.
type Spec struct {
	Metadata Metadata    `json:"metadata"`
	Files    []LayerFile `json:"files"`
}

type Metadata struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	BaseSpeed float64 `json:"baseSpeed"`
}

// LayerFile references one layer image. Bigger depth means further away.
type LayerFile struct {
	URL   string  `json:"url"`
	Depth float64 `json:"depth"`
}

// DepthError is returned for a layer whose depth cannot divide the anchor.
type DepthError struct {
	Index int
	Depth float64
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("background: layer %d has invalid depth %v", e.Index, e.Depth)
}

// Layer is a horizontally tiling image scrolled at 1/Depth of the anchor.
type Layer struct {
	Image  common.Texture
	URL    string
	Depth  float64
	X, Y   float64
	Width  float64
	Height float64
}

// UpdatePosition moves the layer for the given scroll anchor.
func (ly *Layer) UpdatePosition(anchor float64) {
	ly.X = -anchor / ly.Depth
}

// Draw draws the image twice side by side so scrolling stitches seamlessly.
func (ly *Layer) Draw(s common.Surface) {
	if ly == nil || s == nil {
		return
	}
	s.DrawImage(ly.Image, math.Floor(ly.X), ly.Y, ly.Width, ly.Height)
	s.DrawImage(ly.Image, math.Floor(ly.X+ly.Width), ly.Y, ly.Width, ly.Height)
}

// Background owns its layers in back-to-front order.
type Background struct {
	Width     float64
	Height    float64
	BaseSpeed float64
	Layers    []*Layer
}

// New loads one layer per file, keeping input order.
func New(spec Spec, loader common.ImageLoader) (*Background, error) {
	bg := &Background{
		Width:     spec.Metadata.Width,
		Height:    spec.Metadata.Height,
		BaseSpeed: spec.Metadata.BaseSpeed,
		Layers:    make([]*Layer, 0, len(spec.Files)),
	}
	for i, f := range spec.Files {
		if !(f.Depth > 0) || math.IsInf(f.Depth, 0) {
			return nil, &DepthError{Index: i, Depth: f.Depth}
		}
		var img common.Texture
		if loader != nil {
			var err error
			img, err = loader.LoadImage(f.URL)
			if err != nil {
				return nil, fmt.Errorf("background: load layer %d %q: %w", i, f.URL, err)
			}
		}
		bg.Layers = append(bg.Layers, &Layer{
			Image:  img,
			URL:    f.URL,
			Depth:  f.Depth,
			Width:  bg.Width,
			Height: bg.Height,
		})
	}
	return bg, nil
}

// UpdateLayers positions and draws every layer for this frame.
func (b *Background) UpdateLayers(anchor float64, s common.Surface) {
	if b == nil {
		return
	}
	for _, ly := range b.Layers {
		ly.UpdatePosition(anchor)
		ly.Draw(s)
	}
}
