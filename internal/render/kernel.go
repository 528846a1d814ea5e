package render

import (
	"math"

	xdraw "golang.org/x/image/draw"
)

// Lanczos3 is a windowed-sinc resampling kernel with three lobes. When
// downscaling, x/image/draw widens the kernel by the scale ratio, so every
// source pixel under a destination pixel contributes to it.
var Lanczos3 = &xdraw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}
