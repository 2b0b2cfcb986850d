package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/levelgeo/config"
	"github.com/milk9111/levelgeo/debugui"
	"github.com/milk9111/levelgeo/level"
	"github.com/milk9111/levelgeo/levels"
	"github.com/milk9111/levelgeo/render"
)

const probeSize = 12

var skyColor = color.RGBA{R: 0x20, G: 0x28, B: 0x40, A: 0xff}

type Game struct {
	cfg    config.Config
	frames int

	loader    *render.Loader
	level     *level.Level
	levelName string
	watcher   *levels.Watcher
	inspector *debugui.Inspector

	camX     float64
	probe    *Probe
	probeImg *ebiten.Image
}

func NewGame(cfg config.Config) (*Game, error) {
	loader := render.NewLoader(cfg.PlaceholderTextures, cfg.AssetDirs...)
	lvl, err := levels.Load(cfg.Level, loader)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", cfg.Level, err)
	}
	log.Printf("loaded %v", lvl)

	g := &Game{
		cfg:       cfg,
		loader:    loader,
		level:     lvl,
		levelName: cfg.Level,
		probe:     &Probe{},
		probeImg:  ebiten.NewImage(probeSize, probeSize),
	}
	g.probeImg.Fill(color.RGBA{R: 0xff, G: 0xe0, B: 0x20, A: 0xff})

	if cfg.Watch {
		w, err := levels.NewWatcher(levels.Dir)
		if err != nil {
			log.Printf("level hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	if cfg.Debug {
		g.inspector = debugui.NewInspector()
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reloadChanged()

	g.camX += g.cfg.ScrollSpeed
	if maxX := g.level.Length() - float64(g.cfg.Window.Width); g.camX > maxX {
		g.camX = 0
	}
	if g.camX < 0 {
		g.camX = 0
	}

	g.probe.Sample(g.level, g.camX+g.cfg.ProbeOffset)

	if g.inspector != nil {
		g.inspector.Show("level", g.level)
		g.inspector.Show("probe", g.probe)
		g.inspector.Update()
	}
	return nil
}

// reloadChanged replaces the level wholesale when its file changes on disk.
func (g *Game) reloadChanged() {
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if name != g.levelName {
			continue
		}
		lvl, err := levels.Load(name, g.loader)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		log.Printf("reloaded %v", lvl)
		if g.inspector != nil {
			g.inspector.Remove("level")
		}
		g.level = lvl
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	g.level.Background().UpdateLayers(g.camX, render.Screen{Target: screen})

	// ground sits on the bottom edge of the window
	offsetY := float64(g.cfg.Window.Height) - g.level.LevelHeight()
	g.level.Draw(render.Screen{Target: screen, OffsetY: offsetY}, g.camX, float64(g.cfg.Window.Width))

	if h, ok := g.probe.Ground.Height(); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.probe.X-g.camX-probeSize/2, h+offsetY-probeSize)
		screen.DrawImage(g.probeImg, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    x: %.0f    FPS: %.2f", g.level.Name(), g.probe.X, ebiten.ActualFPS()))

	if g.inspector != nil {
		g.inspector.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
