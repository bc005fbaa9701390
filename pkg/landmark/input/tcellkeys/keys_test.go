package tcellkeys

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"F6", tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModNone), "F6"},
		{"Shift+F6 reported", tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModShift), "Shift+F6"},
		{"Shift+F6 as F18", tcell.NewEventKey(tcell.KeyF18, 0, tcell.ModNone), "Shift+F6"},
		{"Ctrl+F6 as F30", tcell.NewEventKey(tcell.KeyF30, 0, tcell.ModNone), "Ctrl+F6"},
		{"Alt+F6 as F54", tcell.NewEventKey(tcell.KeyF54, 0, tcell.ModNone), "Alt+F6"},
		{"Alt+F6 reported", tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModAlt), "Alt+F6"},
		{"F12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), "F12"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "Shift+Tab"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "q"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl), "Ctrl+ArrowUp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Translate(tt.ev, "target")
			if ev == nil {
				t.Fatal("Translate returned nil")
			}
			if got := ev.String(); got != tt.want {
				t.Errorf("Translate() = %q, want %q", got, tt.want)
			}
			if ev.Target != "target" {
				t.Errorf("Target = %v", ev.Target)
			}
		})
	}
}

func TestTranslateUnnamed(t *testing.T) {
	if ev := Translate(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone), nil); ev != nil {
		t.Errorf("Translate(Print) = %v, want nil", ev)
	}
	if ev := Translate(nil, nil); ev != nil {
		t.Errorf("Translate(nil) = %v, want nil", ev)
	}
}

func TestModifiers(t *testing.T) {
	got := Modifiers(tcell.ModShift | tcell.ModMeta)
	if got != landmark.ModShift|landmark.ModMeta {
		t.Errorf("Modifiers() = %v", got)
	}
}
