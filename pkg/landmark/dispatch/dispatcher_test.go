package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

func TestDispatchHandlerError(t *testing.T) {
	boom := errors.New("boom")
	d := New(4).Register(KindBlurLandmark, func(Command) error { return boom })

	err := d.Dispatch(BlurLandmark("a"))
	require.ErrorIs(t, err, boom)
	require.Equal(t, OutcomeFailed, d.History().Peek().Outcome)
}

func TestDispatchNoneIsNotRecorded(t *testing.T) {
	d := New(4)
	require.NoError(t, d.Dispatch(None()))
	require.True(t, d.History().IsEmpty())
}

func TestDispatchConsumeNeedsNoHandler(t *testing.T) {
	d := New(4)
	require.NoError(t, d.Dispatch(Consume()))
	require.Equal(t, 1, d.History().Len())
	require.Equal(t, OutcomeExecuted, d.History().Peek().Outcome)
	require.False(t, Consume().IsNone())
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Push(MoveFocus("a"), OutcomeExecuted)
	h.Push(MoveFocus("b"), OutcomeExecuted)
	h.Push(MoveFocus("c"), OutcomeSkipped)

	entries := h.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "b", entries[0].Command.Element)
	require.Equal(t, "c", entries[1].Command.Element)
	require.Equal(t, OutcomeSkipped, h.Peek().Outcome)

	h.Clear()
	require.Zero(t, h.Len())
	require.Nil(t, h.Peek())
}

func TestHistoryDefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistorySize+5; i++ {
		h.Push(None(), OutcomeExecuted)
	}
	require.Equal(t, DefaultHistorySize, h.Len())
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{None(), "none"},
		{Consume(), "consume"},
		{MoveFocus("x"), "move-focus(x)"},
		{FocusLandmark("x", constants.DirectionForward), "focus-landmark(x, forward)"},
		{BlurLandmark("x"), "blur-landmark(x)"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
