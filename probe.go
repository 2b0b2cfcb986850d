package main

import (
	"github.com/milk9111/levelgeo/common"
	"github.com/milk9111/levelgeo/level"
	"github.com/milk9111/levelgeo/tilemap"
)

// Probe samples the level at one x per frame.
type Probe struct {
	X      float64
	Cell   tilemap.Cell
	Ground level.Ground
	Err    error
}

func (p *Probe) Sample(l *level.Level, x float64) {
	p.X = x
	p.Err = nil
	p.Cell = tilemap.Cell{}
	p.Ground = level.NoGround()

	cell, err := l.TileAt(x)
	if err != nil {
		// off the edge of the level
		p.Err = err
		return
	}
	p.Cell = cell
	p.Ground, p.Err = l.GroundAt(x)
}

func (p *Probe) DebugFields() []common.Field {
	var height any = "none"
	if h, ok := p.Ground.Height(); ok {
		height = h
	}
	var errText any
	if p.Err != nil {
		errText = p.Err.Error()
	}
	return []common.Field{
		{Name: "x", Value: p.X},
		{Name: "tile", Value: string(p.Cell.Code)},
		{Name: "tileX", Value: p.Cell.X},
		{Name: "tileY", Value: p.Cell.Y},
		{Name: "ground", Value: height},
		{Name: "error", Value: errText},
	}
}
