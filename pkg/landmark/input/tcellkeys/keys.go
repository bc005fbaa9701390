// Package tcellkeys translates terminal key events from tcell into
// landmark key events.
package tcellkeys

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

var names = map[tcell.Key]string{
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
}

// Translate converts a tcell key event into a landmark key event aimed at
// target. It returns nil for keys with no name.
//
// Terminals without modifier reporting send shifted and controlled
// function keys as F13 and up (xterm numbering), so F13-F24 become
// Shift+F1-F12, F25-F36 Ctrl+F1-F12, F37-F48 Ctrl+Shift+F1-F12 and F49-F60
// Alt+F1-F12.
func Translate(ev *tcell.EventKey, target landmark.Element) *landmark.KeyEvent {
	if ev == nil {
		return nil
	}

	key, mods := Name(ev.Key(), ev.Rune())
	if key == "" {
		return nil
	}
	return landmark.NewKeyEvent(key, mods|Modifiers(ev.Modifiers()), target)
}

// Name returns the key name for a tcell key, plus any modifiers implied by
// the key code itself.
func Name(k tcell.Key, r rune) (string, landmark.Modifier) {
	if k >= tcell.KeyF1 && k <= tcell.KeyF60 {
		n := int(k - tcell.KeyF1)
		return fmt.Sprintf("F%d", n%12+1), functionModifiers[n/12]
	}
	if k == tcell.KeyBacktab {
		return "Tab", landmark.ModShift
	}
	if k == tcell.KeyRune {
		return string(r), landmark.ModNone
	}
	return names[k], landmark.ModNone
}

var functionModifiers = [...]landmark.Modifier{
	landmark.ModNone,
	landmark.ModShift,
	landmark.ModCtrl,
	landmark.ModCtrl | landmark.ModShift,
	landmark.ModAlt,
}

// Modifiers converts a tcell modifier mask.
func Modifiers(m tcell.ModMask) landmark.Modifier {
	var mods landmark.Modifier
	if m&tcell.ModShift != 0 {
		mods |= landmark.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= landmark.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= landmark.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= landmark.ModMeta
	}
	return mods
}
