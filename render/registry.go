package render

import "github.com/hajimehoshi/ebiten/v2"

// registry caches images by key.
type registry map[string]*ebiten.Image

func (r registry) register(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	r[key] = img
}

func (r registry) get(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return r[key]
}
