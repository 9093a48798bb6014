package mandel

import (
	"fmt"
	"math"
)

// Point is a coordinate in the complex plane.
type Point struct {
	X, Y float64
}

// Viewport is the rectangle of the complex plane mapped onto the screen.
type Viewport struct {
	Min, Max Point
}

// DefaultViewport covers [-2,2] on both axes.
var DefaultViewport = Viewport{
	Min: Point{X: -2, Y: -2},
	Max: Point{X: 2, Y: 2},
}

// Map linearly maps v from [inMin, inMax] to [outMin, outMax].
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Valid reports whether the viewport is a finite, non-empty rectangle.
func (v Viewport) Valid() bool {
	for _, f := range [...]float64{v.Min.X, v.Min.Y, v.Max.X, v.Max.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.Min.X < v.Max.X && v.Min.Y < v.Max.Y
}

// At returns the plane coordinate of screen pixel (sx, sy) on a w x h screen.
// Row 0 maps to Min.Y.
func (v Viewport) At(sx, sy, w, h int) Point {
	return Point{
		X: Map(float64(sx), 0, float64(w), v.Min.X, v.Max.X),
		Y: Map(float64(sy), 0, float64(h), v.Min.Y, v.Max.Y),
	}
}

// Scale multiplies both corners by f. The rectangle is scaled around the
// origin, not around its own center.
func (v Viewport) Scale(f float64) Viewport {
	return Viewport{
		Min: Point{X: v.Min.X * f, Y: v.Min.Y * f},
		Max: Point{X: v.Max.X * f, Y: v.Max.Y * f},
	}
}

// ScaleX multiplies Min.X by fMin and Max.X by fMax.
func (v Viewport) ScaleX(fMin, fMax float64) Viewport {
	v.Min.X *= fMin
	v.Max.X *= fMax
	return v
}

// ScaleY multiplies Min.Y by fMin and Max.Y by fMax.
func (v Viewport) ScaleY(fMin, fMax float64) Viewport {
	v.Min.Y *= fMin
	v.Max.Y *= fMax
	return v
}

func (v Viewport) String() string {
	return fmt.Sprintf("x[%.6g,%.6g] y[%.6g,%.6g]", v.Min.X, v.Max.X, v.Min.Y, v.Max.Y)
}
