//go:build linux

package evdevkeys

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

func key(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func TestFeed(t *testing.T) {
	var tr Translator

	ev := tr.Feed(key(evdev.KEY_F6, valuePress), "body")
	require.NotNil(t, ev)
	require.Equal(t, "F6", ev.String())
	require.Equal(t, "body", ev.Target)

	require.Nil(t, tr.Feed(key(evdev.KEY_F6, valueRelease), nil))
	require.Nil(t, tr.Feed(key(evdev.KEY_A, valuePress), nil))
	require.Nil(t, tr.Feed(&evdev.InputEvent{Type: evdev.EV_SYN}, nil))
	require.Nil(t, tr.Feed(nil, nil))
}

func TestFeedTracksModifiers(t *testing.T) {
	var tr Translator

	require.Nil(t, tr.Feed(key(evdev.KEY_LEFTSHIFT, valuePress), nil))
	require.Nil(t, tr.Feed(key(evdev.KEY_RIGHTSHIFT, valuePress), nil))
	require.Equal(t, "Shift+F6", tr.Feed(key(evdev.KEY_F6, valuePress), nil).String())

	// Shift stays held while either side is down.
	tr.Feed(key(evdev.KEY_LEFTSHIFT, valueRelease), nil)
	require.Equal(t, landmark.ModShift, tr.Modifiers())

	tr.Feed(key(evdev.KEY_LEFTALT, valuePress), nil)
	require.Equal(t, "Alt+Shift+F6", tr.Feed(key(evdev.KEY_F6, valueRepeat), nil).String())

	tr.Feed(key(evdev.KEY_RIGHTSHIFT, valueRelease), nil)
	tr.Feed(key(evdev.KEY_LEFTALT, valueRelease), nil)
	require.Equal(t, landmark.ModNone, tr.Modifiers())

	tr.Feed(key(evdev.KEY_LEFTCTRL, valuePress), nil)
	tr.Reset()
	require.Equal(t, "F6", tr.Feed(key(evdev.KEY_F6, valuePress), nil).String())
}
