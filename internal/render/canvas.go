package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/icongen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a square offscreen RGBA bitmap that starts fully transparent.
type Canvas struct {
	img  *image.RGBA
	size int
}

var _ Drawer = (*Canvas)(nil)

// New returns a transparent size×size canvas.
func New(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(layout.Square(size)), size: size}
}

func (c *Canvas) Size() int { return c.size }

// Image returns the backing bitmap.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillCircle(center layout.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	c.circle(center, radius).Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) PunchCircle(center layout.Point, radius float64) {
	if radius <= 0 {
		return
	}
	// Rasterize the hole as coverage, then scale each covered pixel by
	// (1 - coverage). Pixels outside the hole are left untouched.
	hole := image.NewAlpha(c.img.Bounds())
	c.circle(center, radius).Draw(hole, hole.Bounds(), image.Opaque, image.Point{})

	for i, m := range hole.Pix {
		if m == 0 {
			continue
		}
		keep := 0xff - uint32(m)
		px := c.img.Pix[4*i : 4*i+4]
		for j := range px {
			px[j] = uint8((uint32(px[j])*keep + 0x7f) / 0xff)
		}
	}
}

// circle returns a rasterizer holding a disc outline built from four
// cubic Béziers.
func (c *Canvas) circle(center layout.Point, radius float64) *vector.Rasterizer {
	z := vector.NewRasterizer(c.size, c.size)

	cx, cy := float32(center.X), float32(center.Y)
	r := float32(radius)
	k := float32(kappa) * r

	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	return z
}

func (c *Canvas) StrokeLine(from, to layout.Point, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	r := raster.NewRasterizer(c.size, c.size)
	r.UseNonZeroWinding = true

	var path raster.Path
	path.Start(toFixed(from))
	path.Add1(toFixed(to))
	r.AddStroke(path, fixed.Int26_6(math.Round(width*64)), raster.RoundCapper, raster.RoundJoiner)

	painter := raster.NewRGBAPainter(c.img)
	painter.SetColor(col)
	r.Rasterize(painter)
}

// Resample scales the canvas to size×size with DefaultFilter and returns
// the result as a new canvas. A canvas already at size is returned as is.
func (c *Canvas) Resample(size int) *Canvas {
	if size == c.size {
		return c
	}
	dst := New(size)
	DefaultFilter.Scale(dst.img, dst.img.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	return dst
}

// Tint repaints every pixel with col while keeping its alpha. After a
// single-color glyph is resampled this removes the hue drift left where
// filter overshoot clamped alpha but not the color channels.
func (c *Canvas) Tint(col color.Color) {
	mask := image.NewAlpha(c.img.Bounds())
	draw.Draw(mask, mask.Bounds(), c.img, c.img.Bounds().Min, draw.Src)
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, mask, mask.Bounds().Min, draw.Src)
}

func toFixed(p layout.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}
