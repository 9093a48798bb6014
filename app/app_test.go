package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mandelview/hal"
)

func TestWindowConfig(t *testing.T) {
	cfg := WindowConfig()
	assert.Equal(t, Width, cfg.Width)
	assert.Equal(t, Height, cfg.Height)
	assert.Contains(t, cfg.Title, "Mandelbrot")
}

func TestHeadlessRun(t *testing.T) {
	for _, streamed := range []bool{false, true} {
		var h hal.HAL
		err := hal.RunHeadless(context.Background(), func(hh hal.HAL) (func() error, error) {
			h = hh
			return NewWithConfig(hh, Config{Streamed: streamed})
		}, hal.HeadlessConfig{Hz: 1000, Ticks: 2, Width: 32, Height: 24})
		require.NoError(t, err)
		assert.Contains(t, h.Display().(interface{ Caption() string }).Caption(), "x[-2,2]")
	}
}
