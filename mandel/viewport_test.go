package mandel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestMapEndpoints(t *testing.T) {
	assert.Equal(t, -2.0, Map(0, 0, 640, -2, 2))
	assert.Equal(t, 2.0, Map(640, 0, 640, -2, 2))
	assert.Equal(t, 0.0, Map(320, 0, 640, -2, 2))
}

func TestMapMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := 0; x <= 480; x++ {
		v := Map(float64(x), 0, 480, -1.5, 0.5)
		require.Greater(t, v, prev)
		prev = v
	}
}

func TestViewportAt(t *testing.T) {
	v := DefaultViewport
	assert.Equal(t, Point{X: -2, Y: -2}, v.At(0, 0, 640, 480))
	assert.Equal(t, Point{X: 0, Y: 0}, v.At(320, 240, 640, 480))
	assert.Equal(t, Point{X: 2, Y: 2}, v.At(640, 480, 640, 480))
}

func TestViewportValid(t *testing.T) {
	assert.True(t, DefaultViewport.Valid())
	assert.False(t, Viewport{}.Valid())
	assert.False(t, Viewport{Min: Point{X: 1, Y: 0}, Max: Point{X: 0, Y: 1}}.Valid())
	assert.False(t, Viewport{Min: Point{X: math.Inf(-1), Y: 0}, Max: Point{X: 0, Y: 1}}.Valid())
	assert.False(t, Viewport{Min: Point{X: 0, Y: math.NaN()}, Max: Point{X: 1, Y: 1}}.Valid())
}

func TestZoomRoundTrip(t *testing.T) {
	v := Viewport{Min: Point{X: -1.75, Y: -0.3}, Max: Point{X: 0.6, Y: 1.2}}
	got := v.Scale(0.9).Scale(1 / 0.9)
	assertViewportNear(t, v, got)
}

func TestZoomDriftsTowardOrigin(t *testing.T) {
	v := Viewport{Min: Point{X: 1, Y: 1}, Max: Point{X: 2, Y: 2}}
	got := v.Scale(0.9)
	assert.InDelta(t, 0.9, got.Min.X, eps)
	assert.InDelta(t, 1.8, got.Max.Y, eps)
}

func TestPanRoundTrip(t *testing.T) {
	v := DefaultViewport
	right := v.ScaleX(0.9, 1/0.9)
	assert.Greater(t, right.Min.X, v.Min.X)
	assert.Greater(t, right.Max.X, v.Max.X)
	assert.Equal(t, v.Min.Y, right.Min.Y)
	assert.Equal(t, v.Max.Y, right.Max.Y)

	back := right.ScaleX(1/0.9, 0.9)
	assertViewportNear(t, v, back)

	down := v.ScaleY(0.9, 1/0.9)
	assertViewportNear(t, v, down.ScaleY(1/0.9, 0.9))
}

func TestViewportString(t *testing.T) {
	assert.Equal(t, "x[-2,2] y[-2,2]", DefaultViewport.String())
}

func assertViewportNear(t *testing.T, want, got Viewport) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, eps)
	assert.InDelta(t, want.Min.Y, got.Min.Y, eps)
	assert.InDelta(t, want.Max.X, got.Max.X, eps)
	assert.InDelta(t, want.Max.Y, got.Max.Y, eps)
}
