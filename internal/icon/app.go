package icon

import (
	"image"

	"github.com/rook-computer/icongen/internal/render"
)

// RenderApp draws the application icon at size×size pixels: a brand
// colored disc with a white downward arrow on a transparent background.
func RenderApp(size int, p Palette) *image.RGBA {
	c := render.New(size)
	AppGlyph.Scaled(size).Draw(c, p.Brand, p.Arrow)
	return c.Image()
}
