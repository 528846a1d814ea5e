package icon

import (
	"image"

	"github.com/rook-computer/icongen/internal/render"
)

// MasterSize is the resolution menu bar icons are drawn at before being
// downsampled to their target size.
const MasterSize = 256

// RenderMenuBar draws the ring-and-arrow menu bar icon at size×size pixels.
// The glyph is drawn on a MasterSize canvas and downsampled, which keeps
// 18px strokes smooth. Targets larger than the master are drawn at their
// own size instead of being upsampled.
func RenderMenuBar(size int, template bool, p Palette) *image.RGBA {
	master := MasterSize
	if size > master {
		master = size
	}
	col := p.MenuBarColor(template)

	c := render.New(master)
	MenuBarGlyph.Scaled(master).Draw(c, col, col)
	out := c.Resample(size)
	out.Tint(col)
	return out.Image()
}
