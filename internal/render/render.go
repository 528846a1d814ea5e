package render

import (
	"image/color"

	"github.com/rook-computer/icongen/internal/render/layout"
)

// Drawer is the set of primitives icon glyphs are built from. Coordinates
// are in pixels on a square canvas of Size() pixels.
type Drawer interface {
	Size() int

	// FillCircle composites an anti-aliased disc over the canvas.
	FillCircle(center layout.Point, radius float64, c color.Color)

	// PunchCircle resets a disc to full transparency.
	PunchCircle(center layout.Point, radius float64)

	// StrokeLine draws a segment of the given width with round caps.
	StrokeLine(from, to layout.Point, width float64, c color.Color)
}
