package explorer

import (
	"mandelview/hal"
	"mandelview/mandel"
)

// Command is a user action resolved from a key press.
type Command uint8

const (
	CommandNone Command = iota
	CommandZoomIn
	CommandZoomOut
	CommandPanUp
	CommandPanDown
	CommandPanLeft
	CommandPanRight
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandZoomIn:
		return "zoom-in"
	case CommandZoomOut:
		return "zoom-out"
	case CommandPanUp:
		return "pan-up"
	case CommandPanDown:
		return "pan-down"
	case CommandPanLeft:
		return "pan-left"
	case CommandPanRight:
		return "pan-right"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Keymap binds key codes and runes to commands. Codes are consulted first.
type Keymap struct {
	Codes map[hal.KeyCode]Command
	Runes map[rune]Command
}

// DefaultKeymap returns the stock bindings: arrows pan, +/- zoom, Esc/q quit.
func DefaultKeymap() Keymap {
	return Keymap{
		Codes: map[hal.KeyCode]Command{
			hal.KeyUp:       CommandPanUp,
			hal.KeyDown:     CommandPanDown,
			hal.KeyLeft:     CommandPanLeft,
			hal.KeyRight:    CommandPanRight,
			hal.KeyPlus:     CommandZoomIn,
			hal.KeyPageUp:   CommandZoomIn,
			hal.KeyMinus:    CommandZoomOut,
			hal.KeyPageDown: CommandZoomOut,
			hal.KeyEscape:   CommandQuit,
		},
		Runes: map[rune]Command{
			'+': CommandZoomIn,
			'=': CommandZoomIn,
			'-': CommandZoomOut,
			'q': CommandQuit,
		},
	}
}

// Lookup resolves ev to a command. Releases and auto-repeats resolve to
// CommandNone so a held key acts once.
func (k Keymap) Lookup(ev hal.KeyEvent) Command {
	if !ev.Press || ev.Repeat {
		return CommandNone
	}
	if ev.Code != hal.KeyUnknown {
		if cmd, ok := k.Codes[ev.Code]; ok {
			return cmd
		}
	}
	if ev.Rune != 0 {
		if cmd, ok := k.Runes[ev.Rune]; ok {
			return cmd
		}
	}
	return CommandNone
}

// Transform maps a viewport to a new one given the zoom factor f (0 < f < 1).
type Transform func(v mandel.Viewport, f float64) mandel.Viewport

// transforms holds the viewport change for every command that has one.
// Pans scale one axis asymmetrically: the corner on the leading side grows
// by 1/f while the trailing corner shrinks by f.
var transforms = map[Command]Transform{
	CommandZoomIn: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.Scale(f)
	},
	CommandZoomOut: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.Scale(1 / f)
	},
	CommandPanRight: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.ScaleX(f, 1/f)
	},
	CommandPanLeft: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.ScaleX(1/f, f)
	},
	CommandPanDown: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.ScaleY(f, 1/f)
	},
	CommandPanUp: func(v mandel.Viewport, f float64) mandel.Viewport {
		return v.ScaleY(1/f, f)
	},
}
