package hal

import (
	"fmt"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int

	// back receives uploads; front holds the last presented frame.
	back  []byte
	front []byte

	presents uint64
}

func newHostFramebuffer(width, height int) (*hostFramebuffer, error) {
	f := &hostFramebuffer{}
	if err := f.Resize(width, height); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *hostFramebuffer) Width() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width
}

func (f *hostFramebuffer) Height() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height
}

func (f *hostFramebuffer) StrideBytes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stride
}

func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }

func (f *hostFramebuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("framebuffer: invalid size %dx%d", width, height)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	f.height = height
	f.stride = width * PixelFormatRGBA8888.BytesPerPixel()
	f.back = make([]byte, f.stride*height)
	f.front = make([]byte, f.stride*height)
	return nil
}

func (f *hostFramebuffer) Update(pix []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(pix) != len(f.back) {
		return fmt.Errorf("framebuffer: upload %d bytes to %dx%d: %w", len(pix), f.width, f.height, ErrFrameSize)
	}
	copy(f.back, pix)
	return nil
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presents++
	return nil
}

// snapshot copies the presented frame into dst, reallocating it when the
// size changed, and returns it with the frame dimensions.
func (f *hostFramebuffer) snapshot(dst []byte) ([]byte, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(dst) != len(f.front) {
		dst = make([]byte, len(f.front))
	}
	copy(dst, f.front)
	return dst, f.width, f.height
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
