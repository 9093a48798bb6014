package explorer

import (
	"errors"
	"fmt"
	"image"
	"time"

	"mandelview/hal"
	"mandelview/mandel"
)

const (
	// ZoomFactor scales the viewport corners on zoom in; zoom out uses its inverse.
	ZoomFactor = 0.9

	defaultColumnsPerStep = 32
)

var (
	ErrNoDisplay   = errors.New("explorer: no display")
	ErrNoInput     = errors.New("explorer: no keyboard")
	ErrPixelFormat = errors.New("explorer: unsupported pixel format")
)

// State is the redraw state of the controller.
type State uint8

const (
	StateIdle State = iota
	StateDirty
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Config controls rendering. Zero fields take defaults.
type Config struct {
	// Streamed renders ColumnsPerStep columns per Step and presents each
	// partial frame. Otherwise every redraw is a full frame.
	Streamed       bool
	ColumnsPerStep int

	MaxIterations int
	ZoomFactor    float64
	Viewport      mandel.Viewport
	Keymap        Keymap

	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ColumnsPerStep <= 0 {
		c.ColumnsPerStep = defaultColumnsPerStep
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = mandel.MaxIterations
	}
	if c.ZoomFactor <= 0 || c.ZoomFactor >= 1 {
		c.ZoomFactor = ZoomFactor
	}
	if c.Viewport == (mandel.Viewport{}) {
		c.Viewport = mandel.DefaultViewport
	}
	if c.Keymap.Codes == nil && c.Keymap.Runes == nil {
		c.Keymap = DefaultKeymap()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Controller owns the viewport and pixel buffer and redraws them on demand.
// It is not safe for concurrent use; the host calls Step from its frame loop.
type Controller struct {
	cfg Config

	log     hal.Logger
	disp    hal.Display
	fb      hal.Framebuffer
	keys    <-chan hal.KeyEvent
	resizes <-chan hal.ResizeEvent

	view  mandel.Viewport
	img   *image.RGBA
	state State

	col        int
	frameStart time.Time
	frames     uint64
}

// New returns a controller drawing to h's framebuffer. The first Step renders
// a full frame.
func New(h hal.HAL, cfg Config) (*Controller, error) {
	cfg = cfg.withDefaults()
	if !cfg.Viewport.Valid() {
		return nil, fmt.Errorf("explorer: invalid viewport %s", cfg.Viewport)
	}
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, ErrNoDisplay
	}
	disp := h.Display()
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("%w: %d", ErrPixelFormat, fb.Format())
	}
	in := h.Input()
	if in == nil || in.Keyboard() == nil {
		return nil, ErrNoInput
	}

	c := &Controller{
		cfg:     cfg,
		log:     h.Logger(),
		disp:    disp,
		fb:      fb,
		keys:    in.Keyboard().Events(),
		resizes: disp.Resizes(),
		view:    cfg.Viewport,
		state:   StateDirty,
	}
	if err := c.alloc(fb.Width(), fb.Height()); err != nil {
		return nil, err
	}
	c.updateCaption()
	return c, nil
}

func (c *Controller) State() State              { return c.state }
func (c *Controller) Viewport() mandel.Viewport { return c.view }
func (c *Controller) Pixels() *image.RGBA       { return c.img }
func (c *Controller) Frames() uint64            { return c.frames }

// Step processes pending resizes and key presses, then renders if the view
// is dirty: a full frame when buffered, one batch of columns when streamed.
func (c *Controller) Step() error {
	if err := c.pollResizes(); err != nil {
		return err
	}
	if err := c.pollKeys(); err != nil {
		return err
	}
	if c.state != StateDirty {
		return nil
	}
	if c.cfg.Streamed {
		return c.stream()
	}
	return c.Redraw()
}

// Handle applies a key event. It returns hal.ErrQuit for the quit command.
func (c *Controller) Handle(ev hal.KeyEvent) error {
	cmd := c.cfg.Keymap.Lookup(ev)
	switch cmd {
	case CommandNone:
		return nil
	case CommandQuit:
		return hal.ErrQuit
	}
	tf, ok := transforms[cmd]
	if !ok {
		return nil
	}
	next := tf(c.view, c.cfg.ZoomFactor)
	if !next.Valid() {
		c.logf("explorer: ignoring %s, viewport would be %s", cmd, next)
		return nil
	}
	c.view = next
	c.markDirty()
	c.updateCaption()
	return nil
}

// Resize reallocates the pixel buffer and texture for a w x h display.
func (c *Controller) Resize(w, h int) error {
	if err := c.fb.Resize(w, h); err != nil {
		return fmt.Errorf("explorer: resize texture: %w", err)
	}
	if err := c.alloc(w, h); err != nil {
		return err
	}
	c.logf("explorer: resized to %dx%d", w, h)
	c.markDirty()
	return nil
}

// Redraw renders and presents the full frame.
func (c *Controller) Redraw() error {
	start := c.cfg.Now()
	w := c.img.Rect.Dx()
	for x := 0; x < w; x++ {
		c.renderColumn(x)
	}
	if err := c.present(); err != nil {
		return err
	}
	c.finishFrame(start)
	return nil
}

func (c *Controller) stream() error {
	if c.col == 0 {
		c.frameStart = c.cfg.Now()
	}
	w := c.img.Rect.Dx()
	end := c.col + c.cfg.ColumnsPerStep
	if end > w {
		end = w
	}
	for x := c.col; x < end; x++ {
		c.renderColumn(x)
	}
	c.col = end
	if err := c.present(); err != nil {
		return err
	}
	if c.col >= w {
		c.finishFrame(c.frameStart)
	}
	return nil
}

func (c *Controller) renderColumn(x int) {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	for y := 0; y < h; y++ {
		p := c.view.At(x, y, w, h)
		i := mandel.Escape(p.X, p.Y, c.cfg.MaxIterations)
		c.img.SetRGBA(x, y, mandel.Gradient(i, c.cfg.MaxIterations))
	}
}

func (c *Controller) present() error {
	if err := c.fb.Update(c.img.Pix); err != nil {
		return fmt.Errorf("explorer: upload frame: %w", err)
	}
	if err := c.fb.Present(); err != nil {
		return fmt.Errorf("explorer: present frame: %w", err)
	}
	return nil
}

func (c *Controller) finishFrame(start time.Time) {
	c.state = StateIdle
	c.col = 0
	c.frames++
	c.logf("explorer: frame %d %dx%d %s in %s",
		c.frames, c.img.Rect.Dx(), c.img.Rect.Dy(), c.view, c.cfg.Now().Sub(start).Round(time.Millisecond))
}

func (c *Controller) markDirty() {
	c.state = StateDirty
	c.col = 0
}

func (c *Controller) alloc(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("explorer: invalid size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if s := c.fb.StrideBytes(); s != img.Stride {
		return fmt.Errorf("explorer: framebuffer stride %d, want %d", s, img.Stride)
	}
	c.img = img
	return nil
}

func (c *Controller) pollResizes() error {
	for {
		select {
		case ev, ok := <-c.resizes:
			if !ok {
				c.resizes = nil
				return nil
			}
			if err := c.Resize(ev.Width, ev.Height); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (c *Controller) pollKeys() error {
	for {
		select {
		case ev, ok := <-c.keys:
			if !ok {
				c.keys = nil
				return nil
			}
			if err := c.Handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (c *Controller) updateCaption() {
	mode := "buffered"
	if c.cfg.Streamed {
		mode = "streamed"
	}
	c.disp.SetCaption(fmt.Sprintf("%s  %s", c.view, mode))
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}
