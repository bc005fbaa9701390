// Package sdlkeys turns SDL keyboard events into landmark key events, for
// hosts that draw their own UI with SDL.
package sdlkeys

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

var names = map[sdl.Keycode]string{
	sdl.K_F1:     "F1",
	sdl.K_F2:     "F2",
	sdl.K_F3:     "F3",
	sdl.K_F4:     "F4",
	sdl.K_F5:     "F5",
	sdl.K_F6:     "F6",
	sdl.K_F7:     "F7",
	sdl.K_F8:     "F8",
	sdl.K_F9:     "F9",
	sdl.K_F10:    "F10",
	sdl.K_F11:    "F11",
	sdl.K_F12:    "F12",
	sdl.K_TAB:    "Tab",
	sdl.K_ESCAPE: "Escape",
	sdl.K_RETURN: "Enter",
	sdl.K_UP:     "ArrowUp",
	sdl.K_DOWN:   "ArrowDown",
	sdl.K_LEFT:   "ArrowLeft",
	sdl.K_RIGHT:  "ArrowRight",
}

// Translate converts a key press into a landmark key event aimed at
// target. Releases and unnamed keys return nil; auto-repeats count as
// presses.
func Translate(ev *sdl.KeyboardEvent, target landmark.Element) *landmark.KeyEvent {
	if ev == nil || ev.Type != sdl.KEYDOWN {
		return nil
	}
	name, ok := names[ev.Keysym.Sym]
	if !ok {
		return nil
	}
	return landmark.NewKeyEvent(name, Modifiers(ev.Keysym.Mod), target)
}

// Modifiers converts an SDL modifier mask.
func Modifiers(mod uint16) landmark.Modifier {
	var mods landmark.Modifier
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		mods |= landmark.ModShift
	}
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		mods |= landmark.ModCtrl
	}
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		mods |= landmark.ModAlt
	}
	if mod&uint16(sdl.KMOD_GUI) != 0 {
		mods |= landmark.ModMeta
	}
	return mods
}

// Pump drains the SDL event queue, passing translated key presses to fn.
// target supplies the element that has focus when a key arrives. It
// returns true when a quit event was seen. Call it from the thread that
// initialised SDL.
func Pump(target func() landmark.Element, fn func(*landmark.KeyEvent)) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			var el landmark.Element
			if target != nil {
				el = target()
			}
			if key := Translate(e, el); key != nil {
				fn(key)
			}
		}
	}
	return false
}
