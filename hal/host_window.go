//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app step returns ErrQuit.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	hh, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	h := hh.(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, hud: newOverlay()}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error

	fbImg       *ebiten.Image
	scratch     []byte
	lastPresent uint64

	hud    *overlay
	hudImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if n := fb.presentCount(); n != g.lastPresent || g.fbImg == nil {
		g.lastPresent = n
		var w, h int
		g.scratch, w, h = fb.snapshot(g.scratch)
		if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
			if g.fbImg != nil {
				g.fbImg.Deallocate()
			}
			g.fbImg = ebiten.NewImage(w, h)
		}
		g.fbImg.WritePixels(g.scratch)
	}
	screen.DrawImage(g.fbImg, nil)

	sb := screen.Bounds()
	if g.hud.render(g.h.disp.Caption(), sb.Dx()) {
		if g.hudImg != nil {
			g.hudImg.Deallocate()
		}
		g.hudImg = ebiten.NewImageFromImage(g.hud.img)
	}
	if g.hudImg == nil || g.hud.text == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(sb.Dy()-g.hudImg.Bounds().Dy()))
	screen.DrawImage(g.hudImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.disp.noteSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
