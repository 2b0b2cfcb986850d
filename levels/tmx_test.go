package levels

import (
	"testing"
	"testing/fstest"

	"github.com/milk9111/levelgeo/level"
)

func TestLoadTMX(t *testing.T) {
	def, err := LoadTMX(LevelsFS, "level_03.tmx")
	if err != nil {
		t.Fatalf("LoadTMX failed: %v", err)
	}

	m := def.Metadata
	if m.Level != 3 || m.Name != "Tiled Ridge" {
		t.Fatalf("unexpected identity %d %q", m.Level, m.Name)
	}
	if m.TileWidth != 64 || m.TileHeight != 64 || m.LevelHeight != 256 {
		t.Fatalf("unexpected geometry %+v", m)
	}
	if m.Gravity != 0.6 || m.BorderBarrier != 32 {
		t.Fatalf("physics properties not read: %+v", m)
	}
	if len(def.TileMapString) != 1 || def.TileMapString[0] != `AAA/AAA\_.AA000011100000` {
		t.Fatalf("unexpected map %q", def.TileMapString)
	}

	codes := ""
	for _, d := range def.TilesInfo {
		codes += d.Code
	}
	if codes != `A/\_.` {
		t.Fatalf("unexpected tile codes %q", codes)
	}
	water := def.TilesInfo[3]
	if water.Platform[0] || water.File != "tiles/water.png" {
		t.Fatalf("unexpected water def %+v", water)
	}
	slope := def.TilesInfo[1]
	if slope.Slope != [2]float64{0, -64} || !slope.Platform[0] {
		t.Fatalf("unexpected slope def %+v", slope)
	}
	empty := def.TilesInfo[4]
	if empty.Platform[0] || empty.File != "" || empty.Width != 64 {
		t.Fatalf("unexpected empty def %+v", empty)
	}
}

func TestTiledRidgeGround(t *testing.T) {
	lvl, err := LoadFromFS(LevelsFS, "level_03", nopLoader{})
	if err != nil {
		t.Fatalf("LoadFromFS failed: %v", err)
	}

	cases := []struct {
		x      float64
		height float64
		ground bool
	}{
		{10, 192, true},
		{3*64 + 32, 160, true},
		{4*64 + 10, 128, true},
		{7*64 + 32, 160, true},
		{8*64 + 5, 0, false},
		{9*64 + 1, 0, false},
		{11*64 + 63, 192, true},
	}
	for _, c := range cases {
		g, err := lvl.GroundAt(c.x)
		if err != nil {
			t.Fatalf("GroundAt(%v) failed: %v", c.x, err)
		}
		h, ok := g.Height()
		if ok != c.ground || (ok && h != c.height) {
			t.Fatalf("GroundAt(%v) = %v,%v expected %v,%v", c.x, h, ok, c.height, c.ground)
		}
	}
}

func TestLoadTMXErrors(t *testing.T) {
	const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="64" tileheight="64" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="64" tileheight="64" tilecount="1" columns="1">
  <tile id="0"/>
 </tileset>
`
	fsys := fstest.MapFS{
		"no_ground.tmx": {Data: []byte(header + ` <layer id="1" name="decor" width="2" height="1"><data encoding="csv">1,1</data></layer>
</map>`)},
		"no_code.tmx": {Data: []byte(header + ` <layer id="1" name="ground" width="2" height="1"><data encoding="csv">1,0</data></layer>
</map>`)},
		"no_file.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="64" tileheight="64" infinite="0">
 <tileset firstgid="1" name="sheet" tilewidth="64" tileheight="64" tilecount="2" columns="2">
  <image source="sheet.png" width="128" height="64"/>
  <tile id="0"><properties><property name="code" value="A"/></properties></tile>
 </tileset>
 <layer id="1" name="ground" width="2" height="1"><data encoding="csv">1,1</data></layer>
</map>`)},
		"off_row.tmx": {Data: []byte(smallTileMap("0,0,\n0,0,\n0,0,\n1,0"))},
	}

	for _, name := range []string{"no_ground.tmx", "no_code.tmx", "no_file.tmx", "off_row.tmx", "missing.tmx"} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadTMX(fsys, name); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

// smallTileMap is a 2x4 map of 32px tiles with one walkable tile type.
func smallTileMap(csv string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="4" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="small" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <tile id="0">
   <properties>
    <property name="code" value="A"/>
    <property name="file" value="tiles/grass.png"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="2" height="4"><data encoding="csv">` + csv + `</data></layer>
</map>`
}

func TestLoadTMXSmallTiles(t *testing.T) {
	// column 0 has its top tile in row 2 (top edge 64px above the bottom),
	// column 1 in row 0 (top edge 128px above the bottom)
	fsys := fstest.MapFS{
		"small.tmx": {Data: []byte(smallTileMap("0,1,\n0,0,\n1,0,\n1,0"))},
	}
	def, err := LoadTMX(fsys, "small.tmx")
	if err != nil {
		t.Fatalf("LoadTMX failed: %v", err)
	}
	if def.Metadata.LevelHeight != 128 || def.Metadata.TileHeight != 32 {
		t.Fatalf("unexpected geometry %+v", def.Metadata)
	}
	if def.TileMapString[0] != "AA01" {
		t.Fatalf("unexpected map %q", def.TileMapString)
	}

	lvl, err := level.New(def, nopLoader{})
	if err != nil {
		t.Fatalf("level.New failed: %v", err)
	}
	cases := []struct {
		x      float64
		height float64
	}{
		// Tiled draws the tile in row 2 with its top at 2*32
		{5, 64},
		{40, 0},
	}
	for _, c := range cases {
		h, err := lvl.GroundHeight(c.x)
		if err != nil {
			t.Fatalf("GroundHeight(%v) failed: %v", c.x, err)
		}
		if h != c.height {
			t.Fatalf("GroundHeight(%v) = %v, expected %v", c.x, h, c.height)
		}
	}
}
