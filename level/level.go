// Package level holds the spatial model of a side-scrolling level: the
// positioned map cells, their tile types and the ground queries built on them.
package level

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/milk9111/levelgeo/background"
	"github.com/milk9111/levelgeo/common"
	"github.com/milk9111/levelgeo/tile"
	"github.com/milk9111/levelgeo/tilemap"
)

// Wall boundary tiles are only solid on one half.
const (
	LeftWallCode  = '['
	RightWallCode = ']'
)

// Physics constants are carried for the game loop and never used here.
type Physics struct {
	Gravity            float64
	HorizontalFriction float64
	VerticalFriction   float64
	BorderBarrier      float64
}

// Level is built once by New and is read-only afterwards.
type Level struct {
	number      int
	name        string
	tileWidth   float64
	tileHeight  float64
	levelHeight float64
	length      float64
	physics     Physics

	cells      []tilemap.Cell
	types      *tile.Registry
	background *background.Background

	tileTypes     json.RawMessage
	startingState json.RawMessage
}

// New validates def and builds a level. Any failure aborts the whole load.
func New(def Definition, loader common.ImageLoader) (*Level, error) {
	m := def.Metadata
	if err := m.validate(); err != nil {
		return nil, err
	}

	types, err := tile.NewRegistry(def.TilesInfo, loader)
	if err != nil {
		return nil, fmt.Errorf("level: build tile types: %w", err)
	}

	rows, err := tilemap.Decode(def.TileMapString, tilemap.DefaultRowCount)
	if err != nil {
		return nil, fmt.Errorf("level: decode map: %w", err)
	}
	cells, err := tilemap.Cells(rows, m.TileWidth, m.LevelHeight)
	if err != nil {
		return nil, fmt.Errorf("level: decode map: %w", err)
	}
	for _, c := range cells {
		if _, ok := types.Lookup(c.Code); !ok {
			return nil, &UnknownTileError{Cell: c.Index, Code: c.Code}
		}
	}

	bg, err := background.New(def.BackgroundInfo, loader)
	if err != nil {
		return nil, fmt.Errorf("level: build background: %w", err)
	}

	return &Level{
		number:      m.Level,
		name:        m.Name,
		tileWidth:   m.TileWidth,
		tileHeight:  m.TileHeight,
		levelHeight: m.LevelHeight,
		length:      float64(len(cells)) * m.TileWidth,
		physics: Physics{
			Gravity:            m.Gravity,
			HorizontalFriction: m.HorizontalFriction,
			VerticalFriction:   m.VerticalFriction,
			BorderBarrier:      m.BorderBarrier,
		},
		cells:         cells,
		types:         types,
		background:    bg,
		tileTypes:     cloneRaw(def.TileTypes),
		startingState: cloneRaw(def.StartingState),
	}, nil
}

func cloneRaw(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}

func (l *Level) Number() int                        { return l.number }
func (l *Level) Name() string                       { return l.name }
func (l *Level) TileWidth() float64                 { return l.tileWidth }
func (l *Level) TileHeight() float64                { return l.tileHeight }
func (l *Level) LevelHeight() float64               { return l.levelHeight }
func (l *Level) Length() float64                    { return l.length }
func (l *Level) Physics() Physics                   { return l.physics }
func (l *Level) TileTypes() *tile.Registry          { return l.types }
func (l *Level) Background() *background.Background { return l.background }

// StartingState returns a copy of the opaque initial-state payload.
func (l *Level) StartingState() json.RawMessage { return cloneRaw(l.startingState) }

// RawTileTypes returns a copy of the opaque tileTypes payload.
func (l *Level) RawTileTypes() json.RawMessage { return cloneRaw(l.tileTypes) }

// Cells returns a copy of the map cells in x order.
func (l *Level) Cells() []tilemap.Cell {
	return append([]tilemap.Cell(nil), l.cells...)
}

// NoGroundHeight is the out-of-bounds height GroundHeight reports where there
// is nothing to stand on.
func (l *Level) NoGroundHeight() float64 {
	return l.levelHeight * common.NoGroundFactor
}

func (l *Level) cellIndex(x float64) (int, error) {
	if math.IsNaN(x) || x < 0 || x >= l.length {
		return 0, &OutOfRangeError{X: x, Length: l.length}
	}
	i := int(math.Floor(x / l.tileWidth))
	if i >= len(l.cells) {
		i = len(l.cells) - 1
	}
	// x / tileWidth can land one cell off on a boundary when the width is
	// not exactly representable.
	switch {
	case i > 0 && x < l.cells[i].X:
		i--
	case i < len(l.cells)-1 && x >= l.cells[i].X+l.tileWidth:
		i++
	}
	return i, nil
}
