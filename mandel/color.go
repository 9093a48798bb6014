package mandel

import "image/color"

// InSet is the color of points that never escaped.
var InSet = color.RGBA{A: 0xFF}

// Gradient maps an iteration count to a color. Each channel ramps linearly
// from 0 with its own ceiling; counts at or above maxIter are InSet.
func Gradient(i, maxIter int) color.RGBA {
	if i >= maxIter {
		return InSet
	}
	n := float64(i)
	top := float64(maxIter)
	return color.RGBA{
		R: uint8(Map(n, 0, top, 0, 255)),
		G: uint8(Map(n, 0, top, 0, 128)),
		B: uint8(Map(n, 0, top, 0, 255)),
		A: 0xFF,
	}
}
