package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelgeo/common"
)

// Screen draws textures onto an ebiten image, scaling each to the requested
// size. It implements common.Surface.
type Screen struct {
	Target *ebiten.Image
	// OffsetY shifts every draw vertically.
	OffsetY float64
}

func (s Screen) DrawImage(tex common.Texture, x, y, w, h float64) {
	img, ok := tex.(*ebiten.Image)
	if !ok || img == nil || s.Target == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y+s.OffsetY)
	s.Target.DrawImage(img, op)
}
