package level

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/levelgeo/background"
	"github.com/milk9111/levelgeo/tile"
)

// Definition is the static level data a Level is built from.
type Definition struct {
	Metadata       Metadata        `json:"metadata"`
	TileTypes      json.RawMessage `json:"tileTypes,omitempty"`
	TilesInfo      []tile.Def      `json:"tilesInfo"`
	TileMapString  []string        `json:"tileMapString"`
	BackgroundInfo background.Spec `json:"backgroundInfo"`
	StartingState  json.RawMessage `json:"startingState,omitempty"`
}

type Metadata struct {
	Level              int     `json:"level"`
	Name               string  `json:"name"`
	TileWidth          float64 `json:"tileWidth"`
	TileHeight         float64 `json:"tileHeight"`
	LevelHeight        float64 `json:"levelHeight"`
	Gravity            float64 `json:"gravity"`
	HorizontalFriction float64 `json:"horizontalFriction"`
	VerticalFriction   float64 `json:"verticalFriction"`
	BorderBarrier      float64 `json:"borderBarrier"`
}

// ParseDefinition decodes level JSON. Unknown fields are ignored.
func ParseDefinition(b []byte) (Definition, error) {
	var def Definition
	if err := json.Unmarshal(b, &def); err != nil {
		return Definition{}, fmt.Errorf("level: unmarshal definition: %w", err)
	}
	return def, nil
}

func (m Metadata) validate() error {
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("level: invalid tile size %vx%v", m.TileWidth, m.TileHeight)
	}
	if m.LevelHeight <= 0 {
		return fmt.Errorf("level: invalid level height %v", m.LevelHeight)
	}
	return nil
}
