package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	overlayBackground = color.RGBA{A: 0x90}
	overlayForeground = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
)

// overlay renders the display caption into a strip drawn over the frame.
type overlay struct {
	img  *image.RGBA
	font tinyfont.Fonter
	text string
}

var _ drivers.Displayer = (*overlay)(nil)

func newOverlay() *overlay {
	return &overlay{font: &proggy.TinySZ8pt7b}
}

func (o *overlay) Size() (x, y int16) {
	if o.img == nil {
		return 0, 0
	}
	b := o.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (o *overlay) SetPixel(x, y int16, c color.RGBA) {
	if o.img == nil {
		return
	}
	if !(image.Point{X: int(x), Y: int(y)}).In(o.img.Bounds()) {
		return
	}
	o.img.SetRGBA(int(x), int(y), c)
}

func (o *overlay) Display() error { return nil }

// render redraws the strip for text at the given width. It reports whether
// the image changed since the last call.
func (o *overlay) render(text string, width int) bool {
	if width <= 0 {
		return false
	}
	if o.img != nil && o.text == text && o.img.Bounds().Dx() == width {
		return false
	}
	o.text = text

	adv := int(o.font.GetYAdvance())
	o.img = image.NewRGBA(image.Rect(0, 0, width, adv+4))
	if text == "" {
		return true
	}
	for i := 0; i+3 < len(o.img.Pix); i += 4 {
		o.img.Pix[i+3] = overlayBackground.A
	}
	tinyfont.WriteLine(o, o.font, 4, int16(adv), text, overlayForeground)
	return true
}
