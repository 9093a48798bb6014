package hal

import (
	"fmt"
	"os"
	"sync"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	kbd    *hostKeyboard
}

// New returns a host HAL implementation with a width x height framebuffer.
func New(width, height int) (HAL, error) {
	fb, err := newHostFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		disp:   newHostDisplay(fb),
		kbd:    newHostKeyboard(),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb      *hostFramebuffer
	resizes chan ResizeEvent

	mu      sync.Mutex
	caption string
	lastW   int
	lastH   int
}

func newHostDisplay(fb *hostFramebuffer) *hostDisplay {
	return &hostDisplay{
		fb:      fb,
		resizes: make(chan ResizeEvent, 4),
		lastW:   fb.Width(),
		lastH:   fb.Height(),
	}
}

func (d *hostDisplay) Framebuffer() Framebuffer    { return d.fb }
func (d *hostDisplay) Resizes() <-chan ResizeEvent { return d.resizes }

func (d *hostDisplay) SetCaption(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.caption = s
}

func (d *hostDisplay) Caption() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caption
}

// noteSize queues a resize event when the outside size changed.
// Only the newest pending size is kept.
func (d *hostDisplay) noteSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	d.mu.Lock()
	if w == d.lastW && h == d.lastH {
		d.mu.Unlock()
		return
	}
	d.lastW, d.lastH = w, h
	d.mu.Unlock()

	ev := ResizeEvent{Width: w, Height: h}
	for {
		select {
		case d.resizes <- ev:
			return
		default:
		}
		select {
		case <-d.resizes:
		default:
		}
	}
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
