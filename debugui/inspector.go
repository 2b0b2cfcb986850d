// Package debugui shows named values of game objects in an on-screen table.
package debugui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/levelgeo/common"
	"golang.org/x/image/font/basicfont"
)

// Source is anything that can describe itself as debug fields.
type Source interface {
	DebugFields() []common.Field
}

// Inspector is a panel with one table per source. Tables are built the first
// time a source is seen and only their values change afterwards.
type Inspector struct {
	ui     *ebitenui.UI
	root   *widget.Container
	face   ebtext.Face
	tables map[string]*table
	order  []string
}

type table struct {
	panel  *widget.Container
	values map[string]*widget.Text
}

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	titleColor = color.NRGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
)

func NewInspector() *Inspector {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Left: 8}),
		)),
	)
	return &Inspector{
		ui:     &ebitenui.UI{Container: root},
		root:   root,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		tables: map[string]*table{},
	}
}

// Show refreshes the table called name with the source's current fields.
func (in *Inspector) Show(name string, src Source) {
	if in == nil || src == nil {
		return
	}
	fields := src.DebugFields()
	tb, ok := in.tables[name]
	if !ok {
		tb = in.newTable(name, fields)
		in.tables[name] = tb
		in.order = append(in.order, name)
		in.root.AddChild(tb.panel)
	}
	for _, f := range fields {
		if txt, ok := tb.values[f.Name]; ok {
			txt.Label = FormatValue(f.Value)
		}
	}
}

// Remove drops the table called name.
func (in *Inspector) Remove(name string) {
	tb, ok := in.tables[name]
	if !ok {
		return
	}
	in.root.RemoveChild(tb.panel)
	delete(in.tables, name)
	for i, n := range in.order {
		if n == name {
			in.order = append(in.order[:i], in.order[i+1:]...)
			break
		}
	}
}

func (in *Inspector) newTable(name string, fields []common.Field) *table {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 180})),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(12, 2),
			widget.GridLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
	)

	face := in.face
	panel.AddChild(widget.NewText(widget.TextOpts.Text(name, &face, titleColor)))
	panel.AddChild(widget.NewText(widget.TextOpts.Text("", &face, titleColor)))

	tb := &table{panel: panel, values: make(map[string]*widget.Text, len(fields))}
	for _, f := range fields {
		panel.AddChild(widget.NewText(widget.TextOpts.Text(f.Name, &face, textColor)))
		val := widget.NewText(widget.TextOpts.Text(FormatValue(f.Value), &face, textColor))
		tb.values[f.Name] = val
		panel.AddChild(val)
	}
	return tb
}

func (in *Inspector) Update() {
	if in == nil {
		return
	}
	in.ui.Update()
}

func (in *Inspector) Draw(screen *ebiten.Image) {
	if in == nil {
		return
	}
	in.ui.Draw(screen)
}

// FormatValue renders a field value for display.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%.2f", x)
	case float32:
		return fmt.Sprintf("%.2f", x)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
