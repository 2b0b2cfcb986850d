package tile

import (
	"fmt"
	"unicode/utf8"

	"github.com/milk9111/levelgeo/common"
)

// Def is a tile type definition as it appears in level data.
type Def struct {
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	U        float64    `json:"u"`
	V        float64    `json:"v"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Platform [2]bool    `json:"platform"`
	Wall     bool       `json:"wall"`
	Slope    [2]float64 `json:"slope"`
	File     string     `json:"file"`
}

// Type is a resolved, read-only tile type.
type Type struct {
	code     rune
	name     string
	u, v     float64
	width    float64
	height   float64
	platform [2]bool
	wall     bool
	slope    [2]float64
	file     string
	texture  common.Texture
}

// NewType validates def and resolves its texture through loader. A def
// with no file gets no texture.
func NewType(def Def, loader common.ImageLoader) (*Type, error) {
	code, err := parseCode(def.Code)
	if err != nil {
		return nil, err
	}
	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("tile: %q has invalid size %vx%v", def.Code, def.Width, def.Height)
	}

	// tiles without a file are invisible
	var tex common.Texture
	if loader != nil && def.File != "" {
		tex, err = loader.LoadImage(def.File)
		if err != nil {
			return nil, fmt.Errorf("tile: load texture %q for %q: %w", def.File, def.Code, err)
		}
	}

	return &Type{
		code:     code,
		name:     def.Name,
		u:        def.U,
		v:        def.V,
		width:    def.Width,
		height:   def.Height,
		platform: def.Platform,
		wall:     def.Wall,
		slope:    def.Slope,
		file:     def.File,
		texture:  tex,
	}, nil
}

func parseCode(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("tile: code %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (t *Type) Code() rune              { return t.code }
func (t *Type) Name() string            { return t.name }
func (t *Type) U() float64              { return t.u }
func (t *Type) V() float64              { return t.v }
func (t *Type) Width() float64          { return t.width }
func (t *Type) Height() float64         { return t.height }
func (t *Type) Platform() [2]bool       { return t.platform }
func (t *Type) Wall() bool              { return t.wall }
func (t *Type) File() string            { return t.file }
func (t *Type) Texture() common.Texture { return t.texture }

// Walkable reports whether the tile surface can be stood on.
func (t *Type) Walkable() bool { return t.platform[0] }

// Slope returns the ground offsets at the tile's left and right edges,
// relative to the tile's base y.
func (t *Type) Slope() (start, end float64) {
	return t.slope[0], t.slope[1]
}
