package background

import (
	"errors"
	"testing"

	"github.com/milk9111/levelgeo/common"
)

type drawCall struct {
	tex        common.Texture
	x, y, w, h float64
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawImage(tex common.Texture, x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{tex, x, y, w, h})
}

type pathLoader struct {
	err error
}

func (l pathLoader) LoadImage(path string) (common.Texture, error) {
	if l.err != nil {
		return nil, l.err
	}
	return path, nil
}

func testSpec() Spec {
	return Spec{
		Metadata: Metadata{Width: 800, Height: 600, BaseSpeed: 2},
		Files: []LayerFile{
			{URL: "bg/sky.png", Depth: 8},
			{URL: "bg/hills.png", Depth: 4},
			{URL: "bg/trees.png", Depth: 2},
		},
	}
}

func TestNewKeepsOrder(t *testing.T) {
	bg, err := New(testSpec(), pathLoader{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if bg.BaseSpeed != 2 || bg.Width != 800 || bg.Height != 600 {
		t.Fatalf("metadata not carried: %+v", bg)
	}
	want := []string{"bg/sky.png", "bg/hills.png", "bg/trees.png"}
	if len(bg.Layers) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(bg.Layers))
	}
	for i, url := range want {
		ly := bg.Layers[i]
		if ly.Image != url || ly.Width != 800 || ly.Height != 600 || ly.X != 0 || ly.Y != 0 {
			t.Fatalf("layer %d: unexpected %+v", i, ly)
		}
	}
}

func TestLayerUpdatePosition(t *testing.T) {
	cases := []struct {
		name   string
		depth  float64
		anchor float64
		x      float64
	}{
		{"origin", 4, 0, 0},
		{"near", 1, 100, -100},
		{"far", 4, 100, -25},
		{"negative_anchor", 2, -50, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ly := &Layer{Depth: c.depth}
			ly.UpdatePosition(c.anchor)
			if ly.X != c.x {
				t.Fatalf("expected x=%v, got %v", c.x, ly.X)
			}
		})
	}
}

func TestLayerDrawTwice(t *testing.T) {
	s := &recordingSurface{}
	ly := &Layer{Image: "img", Depth: 3, Width: 800, Height: 600}
	ly.UpdatePosition(100) // x = -33.33..

	ly.Draw(s)
	if len(s.calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(s.calls))
	}
	if s.calls[0] != (drawCall{"img", -34, 0, 800, 600}) {
		t.Fatalf("unexpected first draw %+v", s.calls[0])
	}
	if s.calls[1] != (drawCall{"img", 766, 0, 800, 600}) {
		t.Fatalf("unexpected second draw %+v", s.calls[1])
	}
}

func TestUpdateLayers(t *testing.T) {
	bg, err := New(testSpec(), pathLoader{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := &recordingSurface{}
	bg.UpdateLayers(160, s)

	if len(s.calls) != 6 {
		t.Fatalf("expected 6 draw calls, got %d", len(s.calls))
	}
	expectedX := []float64{-20, 780, -40, 760, -80, 720}
	for i, x := range expectedX {
		if s.calls[i].x != x {
			t.Fatalf("call %d: expected x=%v, got %v", i, x, s.calls[i].x)
		}
	}
	if s.calls[0].tex != "bg/sky.png" || s.calls[5].tex != "bg/trees.png" {
		t.Fatalf("layers drawn out of order")
	}
}

func TestNewErrors(t *testing.T) {
	loadErr := errors.New("no such file")

	_, err := New(testSpec(), pathLoader{err: loadErr})
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}

	spec := testSpec()
	spec.Files[1].Depth = 0
	_, err = New(spec, pathLoader{})
	var depthErr *DepthError
	if !errors.As(err, &depthErr) || depthErr.Index != 1 {
		t.Fatalf("expected DepthError for layer 1, got %v", err)
	}
}
