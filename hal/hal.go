package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by an app step to end the run cleanly.
	ErrQuit = errors.New("quit")

	// ErrFrameSize is returned when an uploaded buffer does not match the framebuffer.
	ErrFrameSize = errors.New("frame size mismatch")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, one byte per channel in R,G,B,A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8888:
		return 4
	default:
		return 0
	}
}

// Framebuffer is a streaming texture: the caller uploads whole frames and
// presents them.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int

	// Resize recreates the texture with new dimensions.
	Resize(width, height int) error

	// Update copies pix into the texture. len(pix) must be StrideBytes()*Height().
	Update(pix []byte) error

	// Present makes the last uploaded frame visible.
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyPlus
	KeyMinus
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard event.
//
// Repeat marks auto-repeat presses generated while a key is held.
type KeyEvent struct {
	Code   KeyCode
	Press  bool
	Repeat bool
	Rune   rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// ResizeEvent reports new display dimensions in pixels.
type ResizeEvent struct {
	Width, Height int
}

// Display provides access to the framebuffer and window state.
type Display interface {
	Framebuffer() Framebuffer
	Resizes() <-chan ResizeEvent

	// SetCaption sets a one-line status shown alongside the frame.
	SetCaption(s string)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
