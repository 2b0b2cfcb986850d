package level

import (
	"fmt"

	"github.com/milk9111/levelgeo/common"
	"github.com/milk9111/levelgeo/tile"
	"github.com/milk9111/levelgeo/tilemap"
)

// TileAt returns the map cell whose span contains x.
func (l *Level) TileAt(x float64) (tilemap.Cell, error) {
	i, err := l.cellIndex(x)
	if err != nil {
		return tilemap.Cell{}, err
	}
	return l.cells[i], nil
}

// TypeAt returns the tile type of the cell containing x.
func (l *Level) TypeAt(x float64) (*tile.Type, error) {
	c, err := l.TileAt(x)
	if err != nil {
		return nil, err
	}
	t, ok := l.types.Lookup(c.Code)
	if !ok {
		return nil, &UnknownTileError{Cell: c.Index, Code: c.Code}
	}
	return t, nil
}

// GroundAt returns the walkable surface under x. The left half of a
// LeftWallCode tile and the right half of a RightWallCode tile have no
// ground, nor does any tile that is not walkable. Elsewhere the height is
// interpolated along the tile's slope.
func (l *Level) GroundAt(x float64) (Ground, error) {
	c, err := l.TileAt(x)
	if err != nil {
		return NoGround(), err
	}
	t, ok := l.types.Lookup(c.Code)
	if !ok {
		return NoGround(), &UnknownTileError{Cell: c.Index, Code: c.Code}
	}

	offset := (x - c.X) / t.Width()
	start, end := t.Slope()

	switch {
	case offset < 0.5 && c.Code == LeftWallCode:
		return NoGround(), nil
	case offset > 0.5 && c.Code == RightWallCode:
		return NoGround(), nil
	case !t.Walkable():
		return NoGround(), nil
	}
	return GroundAt(common.Lerp(c.Y+start, c.Y+end, offset)), nil
}

// GroundHeight is GroundAt with NoGroundHeight standing in for no ground.
func (l *Level) GroundHeight(x float64) (float64, error) {
	g, err := l.GroundAt(x)
	if err != nil {
		return 0, err
	}
	if h, ok := g.Height(); ok {
		return h, nil
	}
	return l.NoGroundHeight(), nil
}

// Draw draws the cells overlapping [camX, camX+viewWidth).
func (l *Level) Draw(s common.Surface, camX, viewWidth float64) {
	if l == nil || s == nil {
		return
	}
	for _, c := range l.cells {
		if c.X+l.tileWidth <= camX || c.X >= camX+viewWidth {
			continue
		}
		t, ok := l.types.Lookup(c.Code)
		if !ok || t.Texture() == nil {
			continue
		}
		s.DrawImage(t.Texture(), c.X-camX, c.Y, t.Width(), t.Height())
	}
}

// DebugFields lists the level's values for the debug display.
func (l *Level) DebugFields() []common.Field {
	return []common.Field{
		{Name: "level", Value: l.number},
		{Name: "name", Value: l.name},
		{Name: "tileWidth", Value: l.tileWidth},
		{Name: "tileHeight", Value: l.tileHeight},
		{Name: "levelHeight", Value: l.levelHeight},
		{Name: "length", Value: l.length},
		{Name: "cells", Value: len(l.cells)},
		{Name: "tileTypes", Value: l.types.Len()},
		{Name: "gravity", Value: l.physics.Gravity},
		{Name: "horizontalFriction", Value: l.physics.HorizontalFriction},
		{Name: "verticalFriction", Value: l.physics.VerticalFriction},
		{Name: "borderBarrier", Value: l.physics.BorderBarrier},
	}
}

func (l *Level) String() string {
	return fmt.Sprintf("level %d %q (%d cells, length %v)", l.number, l.name, len(l.cells), l.length)
}
