package icon

import "image/color"

// Palette holds the colors icons are painted with.
type Palette struct {
	Brand    color.NRGBA // app icon disc, non-template menu bar glyph
	Arrow    color.NRGBA // app icon arrow
	Template color.NRGBA // template menu bar glyph
}

// DefaultPalette returns the NotToday favicon colors.
func DefaultPalette() Palette {
	return Palette{
		Brand:    color.NRGBA{R: 0xDC, G: 0x35, B: 0x45, A: 0xFF}, // #DC3545
		Arrow:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, // #FFFFFF
		Template: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, // #000000
	}
}

// MenuBarColor picks the glyph color for a menu bar icon. Template images
// are black so the host can recolor them for light and dark themes.
func (p Palette) MenuBarColor(template bool) color.NRGBA {
	if template {
		return p.Template
	}
	return p.Brand
}
