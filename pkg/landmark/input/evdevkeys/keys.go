//go:build linux

// Package evdevkeys reads key presses from Linux input devices and turns
// them into landmark key events. It lets handhelds and kiosks without a
// windowing system drive landmark navigation from a physical keyboard.
package evdevkeys

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

// Key values of EV_KEY events.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

var names = map[evdev.EvCode]string{
	evdev.KEY_F1:    "F1",
	evdev.KEY_F2:    "F2",
	evdev.KEY_F3:    "F3",
	evdev.KEY_F4:    "F4",
	evdev.KEY_F5:    "F5",
	evdev.KEY_F6:    "F6",
	evdev.KEY_F7:    "F7",
	evdev.KEY_F8:    "F8",
	evdev.KEY_F9:    "F9",
	evdev.KEY_F10:   "F10",
	evdev.KEY_F11:   "F11",
	evdev.KEY_F12:   "F12",
	evdev.KEY_TAB:   "Tab",
	evdev.KEY_ESC:   "Escape",
	evdev.KEY_ENTER: "Enter",
	evdev.KEY_UP:    "ArrowUp",
	evdev.KEY_DOWN:  "ArrowDown",
	evdev.KEY_LEFT:  "ArrowLeft",
	evdev.KEY_RIGHT: "ArrowRight",
}

var modifierKeys = map[evdev.EvCode]landmark.Modifier{
	evdev.KEY_LEFTSHIFT:  landmark.ModShift,
	evdev.KEY_RIGHTSHIFT: landmark.ModShift,
	evdev.KEY_LEFTCTRL:   landmark.ModCtrl,
	evdev.KEY_RIGHTCTRL:  landmark.ModCtrl,
	evdev.KEY_LEFTALT:    landmark.ModAlt,
	evdev.KEY_RIGHTALT:   landmark.ModAlt,
	evdev.KEY_LEFTMETA:   landmark.ModMeta,
	evdev.KEY_RIGHTMETA:  landmark.ModMeta,
}

// Translator tracks held modifier keys across a stream of input events.
// The zero value is ready to use.
type Translator struct {
	held map[evdev.EvCode]bool
}

// Modifiers returns the modifiers currently held.
func (t *Translator) Modifiers() landmark.Modifier {
	var mods landmark.Modifier
	for code := range t.held {
		mods |= modifierKeys[code]
	}
	return mods
}

// Feed processes one input event. It returns a key event for presses and
// auto-repeats of named keys, and nil for everything else.
func (t *Translator) Feed(ev *evdev.InputEvent, target landmark.Element) *landmark.KeyEvent {
	if ev == nil || ev.Type != evdev.EV_KEY {
		return nil
	}

	if _, ok := modifierKeys[ev.Code]; ok {
		if t.held == nil {
			t.held = make(map[evdev.EvCode]bool)
		}
		if ev.Value == valueRelease {
			delete(t.held, ev.Code)
		} else {
			t.held[ev.Code] = true
		}
		return nil
	}

	if ev.Value != valuePress && ev.Value != valueRepeat {
		return nil
	}
	name, ok := names[ev.Code]
	if !ok {
		return nil
	}
	return landmark.NewKeyEvent(name, t.Modifiers(), target)
}

// Reset forgets held modifiers, for example after the device was
// reopened.
func (t *Translator) Reset() {
	clear(t.held)
}
