package levels

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/levelgeo/common"
	"github.com/milk9111/levelgeo/level"
	"github.com/milk9111/levelgeo/tile"
	"github.com/milk9111/levelgeo/tilemap"
)

// GroundLayer is the TMX tile layer converted into the level map.
const GroundLayer = "ground"

const defaultEmptyCode = "_"

type propertyGetter interface {
	GetString(name string) string
}

// LoadTMX converts a Tiled map into a level definition. Each column of the
// ground layer becomes one cell: its topmost tile gives the code (tileset
// tile property "code") and its top edge, measured up from the bottom in
// RowHeight units, gives the height digit. Tiles whose top edge is not on a
// RowHeight boundary are rejected. Empty columns use the map property
// "empty_code".
func LoadTMX(fsys fs.FS, tmxPath string) (level.Definition, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return level.Definition{}, fmt.Errorf("levels: load TMX %s: %w", tmxPath, err)
	}

	var ground *tiled.Layer
	for _, ly := range m.Layers {
		if ly.Name == GroundLayer {
			ground = ly
			break
		}
	}
	if ground == nil {
		return level.Definition{}, fmt.Errorf("levels: %s has no %q layer", tmxPath, GroundLayer)
	}
	if len(ground.Tiles) < m.Width*m.Height {
		return level.Definition{}, fmt.Errorf("levels: %s layer %q has %d tiles, want %d", tmxPath, GroundLayer, len(ground.Tiles), m.Width*m.Height)
	}

	var mapProps propertyGetter
	if m.Properties != nil {
		mapProps = m.Properties
	}
	emptyCode := stringProp(mapProps, "empty_code", defaultEmptyCode)

	defs := map[string]tile.Def{}
	var order []string
	addDef := func(d tile.Def) error {
		if prev, ok := defs[d.Code]; ok {
			if prev != d {
				return fmt.Errorf("levels: %s: code %q used by two different tiles", tmxPath, d.Code)
			}
			return nil
		}
		defs[d.Code] = d
		order = append(order, d.Code)
		return nil
	}

	codes := make([]rune, 0, m.Width)
	heights := make([]rune, 0, m.Width)
	usedEmpty := false
	for x := 0; x < m.Width; x++ {
		code, digit := emptyCode, 0
		found := false
		for y := 0; y < m.Height; y++ {
			lt := ground.Tiles[y*m.Width+x]
			if lt == nil || lt.IsNil() {
				continue
			}
			d, err := tmxTileDef(lt)
			if err != nil {
				return level.Definition{}, fmt.Errorf("levels: %s column %d: %w", tmxPath, x, err)
			}
			if err := addDef(d); err != nil {
				return level.Definition{}, err
			}
			// Height digits count RowHeight units, not Tiled rows.
			top := (m.Height - y) * m.TileHeight
			if top%common.RowHeight != 0 {
				return level.Definition{}, fmt.Errorf("levels: %s column %d: tile top %dpx above the bottom is not a multiple of %dpx", tmxPath, x, top, common.RowHeight)
			}
			code, digit = d.Code, top/common.RowHeight-1
			found = true
			break
		}
		if !found {
			usedEmpty = true
		}
		if digit > 9 {
			return level.Definition{}, fmt.Errorf("levels: %s column %d: height %d does not fit one digit", tmxPath, x, digit)
		}
		codes = append(codes, []rune(code)[0])
		heights = append(heights, rune('0'+digit))
	}
	if usedEmpty {
		if _, ok := defs[emptyCode]; !ok {
			defs[emptyCode] = tile.Def{Code: emptyCode, Name: "empty", Width: float64(m.TileWidth), Height: float64(m.TileHeight)}
			order = append(order, emptyCode)
		}
	}

	def := level.Definition{
		Metadata: level.Metadata{
			Level:              intProp(mapProps, "level", 0),
			Name:               stringProp(mapProps, "name", strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))),
			TileWidth:          float64(m.TileWidth),
			TileHeight:         float64(m.TileHeight),
			LevelHeight:        float64(m.Height * m.TileHeight),
			Gravity:            floatProp(mapProps, "gravity", 0),
			HorizontalFriction: floatProp(mapProps, "horizontal_friction", 0),
			VerticalFriction:   floatProp(mapProps, "vertical_friction", 0),
			BorderBarrier:      floatProp(mapProps, "border_barrier", 0),
		},
		TileMapString: []string{tilemap.Encode(tilemap.Rows{codes, heights})},
	}
	for _, c := range order {
		def.TilesInfo = append(def.TilesInfo, defs[c])
	}
	return def, nil
}

func tmxTileDef(lt *tiled.LayerTile) (tile.Def, error) {
	ts := lt.Tileset
	if ts == nil {
		return tile.Def{}, fmt.Errorf("tile %d has no tileset", lt.ID)
	}
	tt, err := ts.GetTilesetTile(lt.ID)
	if err != nil {
		return tile.Def{}, fmt.Errorf("tileset %q tile %d: %w", ts.Name, lt.ID, err)
	}
	var props propertyGetter
	if tt.Properties != nil {
		props = tt.Properties
	}
	code := stringProp(props, "code", "")
	if code == "" {
		return tile.Def{}, fmt.Errorf("tileset %q tile %d has no code property", ts.Name, lt.ID)
	}

	// The tileset image is the whole sheet, so every tile names its own file.
	file := stringProp(props, "file", "")
	if file == "" {
		return tile.Def{}, fmt.Errorf("tileset %q tile %d has no file property", ts.Name, lt.ID)
	}

	return tile.Def{
		Code:     code,
		Name:     stringProp(props, "name", code),
		Width:    float64(ts.TileWidth),
		Height:   float64(ts.TileHeight),
		Platform: [2]bool{boolProp(props, "walkable", true), boolProp(props, "one_way", false)},
		Wall:     boolProp(props, "wall", false),
		Slope:    [2]float64{floatProp(props, "slope_start", 0), floatProp(props, "slope_end", 0)},
		File:     file,
	}, nil
}

func stringProp(p propertyGetter, name, fallback string) string {
	if p == nil {
		return fallback
	}
	if s := p.GetString(name); s != "" {
		return s
	}
	return fallback
}

func floatProp(p propertyGetter, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(stringProp(p, name, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func intProp(p propertyGetter, name string, fallback int) int {
	v, err := strconv.Atoi(stringProp(p, name, ""))
	if err != nil {
		return fallback
	}
	return v
}

func boolProp(p propertyGetter, name string, fallback bool) bool {
	v, err := strconv.ParseBool(stringProp(p, name, ""))
	if err != nil {
		return fallback
	}
	return v
}
