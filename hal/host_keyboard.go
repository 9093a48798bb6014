//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Auto-repeat timing in ticks (60 per second).
const (
	repeatDelayTicks    = 30
	repeatIntervalTicks = 4
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
	r    rune
}{
	{key: ebiten.KeyArrowUp, code: KeyUp},
	{key: ebiten.KeyArrowDown, code: KeyDown},
	{key: ebiten.KeyArrowLeft, code: KeyLeft},
	{key: ebiten.KeyArrowRight, code: KeyRight},
	{key: ebiten.KeyEnter, code: KeyEnter},
	{key: ebiten.KeyEscape, code: KeyEscape},
	{key: ebiten.KeyEqual, code: KeyPlus, r: '='},
	{key: ebiten.KeyNumpadAdd, code: KeyPlus, r: '+'},
	{key: ebiten.KeyMinus, code: KeyMinus, r: '-'},
	{key: ebiten.KeyNumpadSubtract, code: KeyMinus, r: '-'},
	{key: ebiten.KeyPageUp, code: KeyPageUp},
	{key: ebiten.KeyPageDown, code: KeyPageDown},
	{key: ebiten.KeyQ, r: 'q'},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, hk := range hostKeys {
		d := inpututil.KeyPressDuration(hk.key)
		switch {
		case d == 1:
			emit(KeyEvent{Code: hk.code, Press: true, Rune: hk.r})
		case d > repeatDelayTicks && (d-repeatDelayTicks)%repeatIntervalTicks == 0:
			emit(KeyEvent{Code: hk.code, Press: true, Repeat: true, Rune: hk.r})
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			emit(KeyEvent{Code: hk.code, Rune: hk.r})
		}
	}
}
