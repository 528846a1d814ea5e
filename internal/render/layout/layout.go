package layout

import (
	"image"
	"math"
)

// Point is a position in continuous canvas coordinates, where pixel (x, y)
// covers the unit square [x, x+1) × [y, y+1).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Grid is a square design space measured in abstract units. Icons are drawn
// on a grid and mapped onto a pixel canvas with Scale.
type Grid struct {
	Units float64
}

// Scale returns the transform from g onto a size×size pixel canvas.
func (g Grid) Scale(size int) Transform {
	return Transform{Ratio: float64(size) / g.Units}
}

// Transform maps design units to pixels by a uniform ratio.
type Transform struct {
	Ratio float64
}

func (t Transform) Point(p Point) Point {
	return Point{X: p.X * t.Ratio, Y: p.Y * t.Ratio}
}

func (t Transform) Len(v float64) float64 { return v * t.Ratio }

// Stroke converts a stroke width to whole pixels, never thinner than one.
func (t Transform) Stroke(w float64) float64 {
	return math.Max(1, math.Round(w*t.Ratio))
}

// Square returns the bounds of a size×size canvas anchored at the origin.
// Negative sizes are clamped to an empty rectangle.
func Square(size int) image.Rectangle {
	if size < 0 {
		size = 0
	}
	return image.Rect(0, 0, size, size)
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
