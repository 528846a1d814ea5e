package icon

import (
	"image/color"

	"github.com/rook-computer/icongen/internal/render"
	"github.com/rook-computer/icongen/internal/render/layout"
)

// Line is a stroked segment.
type Line struct {
	From, To layout.Point
}

// Glyph is a disc (optionally a ring) with a downward arrow drawn over it,
// described on a design grid.
type Glyph struct {
	Grid   layout.Grid
	Center layout.Point
	Radius float64
	Hole   float64 // radius punched out of the disc; 0 keeps it solid

	Shaft     Line
	LeftBarb  Line
	RightBarb Line
	Stroke    float64
}

// AppGlyph is the favicon design on its 100-unit viewBox.
var AppGlyph = Glyph{
	Grid:      layout.Grid{Units: 100},
	Center:    layout.Pt(50, 50),
	Radius:    48,
	Shaft:     Line{From: layout.Pt(50, 20), To: layout.Pt(50, 55)},
	LeftBarb:  Line{From: layout.Pt(35, 40), To: layout.Pt(50, 55)},
	RightBarb: Line{From: layout.Pt(65, 40), To: layout.Pt(50, 55)},
	Stroke:    8,
}

// MenuBarGlyph is the ring variant on the 256-pixel oversampled master.
// Strokes are thicker than the app icon so they survive downsampling.
var MenuBarGlyph = Glyph{
	Grid:      layout.Grid{Units: MasterSize},
	Center:    layout.Pt(128, 128),
	Radius:    110,
	Hole:      85,
	Shaft:     Line{From: layout.Pt(128, 55), To: layout.Pt(128, 155)},
	LeftBarb:  Line{From: layout.Pt(75, 110), To: layout.Pt(128, 165)},
	RightBarb: Line{From: layout.Pt(181, 110), To: layout.Pt(128, 165)},
	Stroke:    28,
}

// Lines returns the arrow strokes in drawing order.
func (g Glyph) Lines() []Line {
	return []Line{g.Shaft, g.LeftBarb, g.RightBarb}
}

// capRadius is the radius of the round cap the stroker puts on each
// stroke end.
func (g Glyph) capRadius() float64 { return g.Stroke / 2 }

// Scaled returns g in pixel units for a size×size canvas. Stroke widths are
// rounded to whole pixels, minimum one.
func (g Glyph) Scaled(size int) Glyph {
	t := g.Grid.Scale(size)
	line := func(l Line) Line {
		return Line{From: t.Point(l.From), To: t.Point(l.To)}
	}
	return Glyph{
		Grid:      layout.Grid{Units: float64(size)},
		Center:    t.Point(g.Center),
		Radius:    t.Len(g.Radius),
		Hole:      t.Len(g.Hole),
		Shaft:     line(g.Shaft),
		LeftBarb:  line(g.LeftBarb),
		RightBarb: line(g.RightBarb),
		Stroke:    t.Stroke(g.Stroke),
	}
}

// Draw paints g onto d without rescaling: the disc first, then the hole,
// then the arrow strokes.
func (g Glyph) Draw(d render.Drawer, disc, arrow color.Color) {
	d.FillCircle(g.Center, g.Radius, disc)
	if g.Hole > 0 {
		d.PunchCircle(g.Center, g.Hole)
	}
	for _, l := range g.Lines() {
		d.StrokeLine(l.From, l.To, g.Stroke, arrow)
	}
}
