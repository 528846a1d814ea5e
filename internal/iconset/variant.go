package iconset

import "fmt"

// Variant is one output resolution: a logical base size at a display scale.
type Variant struct {
	Base  int
	Scale int
}

// Pixels is the raster edge length of the variant.
func (v Variant) Pixels() int { return v.Base * v.Scale }

// FileName names the variant's PNG, e.g. icon_128x128.png or
// icon_128x128@2x.png.
func (v Variant) FileName(prefix string) string {
	if v.Scale == 1 {
		return fmt.Sprintf("%s_%dx%d.png", prefix, v.Base, v.Base)
	}
	return fmt.Sprintf("%s_%dx%d@%dx.png", prefix, v.Base, v.Base, v.Scale)
}

func (v Variant) String() string {
	return fmt.Sprintf("%dx%d@%dx", v.Base, v.Base, v.Scale)
}

// AppIconVariants lists the resolutions a macOS iconset needs.
func AppIconVariants() []Variant {
	return []Variant{
		{16, 1}, {16, 2},
		{32, 1}, {32, 2},
		{64, 1}, {64, 2},
		{128, 1}, {128, 2},
		{256, 1}, {256, 2},
		{512, 1}, {512, 2},
	}
}

// MenuBarVariants lists the status item sizes: 18pt standard, 22pt alternative.
func MenuBarVariants() []Variant {
	return []Variant{
		{18, 1}, {18, 2},
		{22, 1}, {22, 2},
	}
}
