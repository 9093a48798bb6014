package explorer

import (
	"errors"
	"fmt"
	"strings"

	"mandelview/hal"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeFramebuffer struct {
	w, h   int
	format hal.PixelFormat

	uploads  int
	presents int
	last     []byte

	updateErr error
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 4 }

func (f *fakeFramebuffer) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad size %dx%d", w, h)
	}
	f.w, f.h = w, h
	return nil
}

func (f *fakeFramebuffer) Update(pix []byte) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if len(pix) != f.w*f.h*4 {
		return hal.ErrFrameSize
	}
	f.uploads++
	f.last = append(f.last[:0], pix...)
	return nil
}

func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

type fakeDisplay struct {
	fb      hal.Framebuffer
	resizes chan hal.ResizeEvent
	caption string
}

func (d *fakeDisplay) Framebuffer() hal.Framebuffer    { return d.fb }
func (d *fakeDisplay) Resizes() <-chan hal.ResizeEvent { return d.resizes }
func (d *fakeDisplay) SetCaption(s string)             { d.caption = s }

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct {
	kbd hal.Keyboard
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type fakeHAL struct {
	log  *fakeLogger
	fb   *fakeFramebuffer
	disp *fakeDisplay
	kbd  *fakeKeyboard
}

func newFakeHAL(w, h int) *fakeHAL {
	fb := &fakeFramebuffer{w: w, h: h, format: hal.PixelFormatRGBA8888}
	return &fakeHAL{
		log:  &fakeLogger{},
		fb:   fb,
		disp: &fakeDisplay{fb: fb, resizes: make(chan hal.ResizeEvent, 4)},
		kbd:  &fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h.disp }

func (h *fakeHAL) Input() hal.Input {
	if h.kbd == nil {
		return fakeInput{}
	}
	return fakeInput{kbd: h.kbd}
}

func (h *fakeHAL) press(code hal.KeyCode) {
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
}

var errUpload = errors.New("upload failed")
