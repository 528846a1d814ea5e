package render

import (
	xdraw "golang.org/x/image/draw"
)

// DefaultFilter is used by Canvas.Resample.
var DefaultFilter xdraw.Scaler = Lanczos3

// kappa places cubic Bézier control points so four segments approximate a
// circle to within 0.03% of the radius.
const kappa = 0.5522847498307936
