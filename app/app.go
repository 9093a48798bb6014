package app

import (
	"fmt"

	"mandelview/explorer"
	"mandelview/hal"
	"mandelview/internal/buildinfo"
)

// Window size at startup.
const (
	Width  = 640
	Height = 480
)

type Config struct {
	Streamed bool
}

// NewWithConfig builds the explorer on h and returns its per-frame step.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	c, err := explorer.New(h, explorer.Config{Streamed: cfg.Streamed})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if l := h.Logger(); l != nil {
		mode := "buffered"
		if cfg.Streamed {
			mode = "streamed"
		}
		fb := h.Display().Framebuffer()
		l.WriteLineString(fmt.Sprintf("mandelview %s: %dx%d %s redraw", buildinfo.Short(), fb.Width(), fb.Height(), mode))
	}
	return c.Step, nil
}

// New builds the explorer with the default config.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, Config{})
}

// WindowConfig returns the host window settings.
func WindowConfig() hal.WindowConfig {
	return hal.WindowConfig{
		Title:  "Mandelbrot (" + buildinfo.Short() + ")",
		Width:  Width,
		Height: Height,
	}
}
