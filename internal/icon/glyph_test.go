package icon

import (
	"image/color"
	"testing"

	"github.com/rook-computer/icongen/internal/render/layout"
)

func TestAppGlyphScaled(t *testing.T) {
	g := AppGlyph.Scaled(200)

	tests := []struct {
		name string
		got  layout.Point
		want layout.Point
	}{
		{"center", g.Center, layout.Pt(100, 100)},
		{"shaft top", g.Shaft.From, layout.Pt(100, 40)},
		{"shaft bottom", g.Shaft.To, layout.Pt(100, 110)},
		{"left barb", g.LeftBarb.From, layout.Pt(70, 80)},
		{"right barb", g.RightBarb.From, layout.Pt(130, 80)},
		{"tip", g.LeftBarb.To, layout.Pt(100, 110)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if g.Radius != 96 {
		t.Errorf("Radius = %v, want 96", g.Radius)
	}
	if g.Hole != 0 {
		t.Errorf("Hole = %v, want 0", g.Hole)
	}
	if g.Stroke != 16 || g.capRadius() != 8 {
		t.Errorf("Stroke = %v, capRadius = %v, want 16 and 8", g.Stroke, g.capRadius())
	}
}

func TestAppGlyphStrokeWidth(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{16, 1},
		{32, 3},
		{128, 10},
		{256, 20},
		{512, 41},
		{1024, 82},
	}
	for _, tt := range tests {
		if got := AppGlyph.Scaled(tt.size).Stroke; got != tt.want {
			t.Errorf("stroke at %d = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestMenuBarGlyphAtMaster(t *testing.T) {
	g := MenuBarGlyph.Scaled(MasterSize)
	if g.Center != layout.Pt(128, 128) || g.Radius != 110 || g.Hole != 85 {
		t.Errorf("ring = %v r=%v hole=%v", g.Center, g.Radius, g.Hole)
	}
	if g.Stroke != 28 || g.capRadius() != 14 {
		t.Errorf("Stroke = %v, capRadius = %v, want 28 and 14", g.Stroke, g.capRadius())
	}
	if g.RightBarb.From != layout.Pt(181, 110) || g.RightBarb.To != layout.Pt(128, 165) {
		t.Errorf("right barb = %v", g.RightBarb)
	}
}

type call struct {
	op     string
	radius float64
	width  float64
	color  color.Color
}

type recorder struct{ calls []call }

func (r *recorder) Size() int { return 256 }
func (r *recorder) FillCircle(_ layout.Point, radius float64, c color.Color) {
	r.calls = append(r.calls, call{op: "fill", radius: radius, color: c})
}
func (r *recorder) PunchCircle(_ layout.Point, radius float64) {
	r.calls = append(r.calls, call{op: "punch", radius: radius})
}
func (r *recorder) StrokeLine(_, _ layout.Point, width float64, c color.Color) {
	r.calls = append(r.calls, call{op: "stroke", width: width, color: c})
}

func TestGlyphDrawOrder(t *testing.T) {
	disc := color.NRGBA{R: 1, A: 0xFF}
	arrow := color.NRGBA{G: 1, A: 0xFF}

	t.Run("ring punches before strokes", func(t *testing.T) {
		var r recorder
		MenuBarGlyph.Draw(&r, disc, arrow)
		want := []string{"fill", "punch", "stroke", "stroke", "stroke"}
		if len(r.calls) != len(want) {
			t.Fatalf("got %d calls, want %d", len(r.calls), len(want))
		}
		for i, op := range want {
			if r.calls[i].op != op {
				t.Errorf("call %d = %s, want %s", i, r.calls[i].op, op)
			}
		}
		if r.calls[1].radius != 85 {
			t.Errorf("punch radius = %v, want 85", r.calls[1].radius)
		}
		if r.calls[2].color != arrow {
			t.Errorf("stroke color = %v, want %v", r.calls[2].color, arrow)
		}
	})

	t.Run("solid disc skips punch", func(t *testing.T) {
		var r recorder
		AppGlyph.Scaled(100).Draw(&r, disc, arrow)
		for _, c := range r.calls {
			if c.op == "punch" {
				t.Fatal("solid glyph punched a hole")
			}
		}
		if len(r.calls) != 4 {
			t.Errorf("got %d calls, want 4", len(r.calls))
		}
	})
}
