package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrStale is returned by handlers when the command's target is no longer
	// attached to the document. The dispatcher swallows it.
	ErrStale = errors.New("dispatch: target no longer attached")

	// ErrNoHandler indicates a command kind with no registered handler.
	ErrNoHandler = errors.New("dispatch: no handler registered")
)

// HandlerFunc executes one kind of command against the host.
type HandlerFunc func(cmd Command) error

// Dispatcher runs commands through the handler registered for their kind.
type Dispatcher struct {
	handlers map[Kind]HandlerFunc
	history  *History
}

// New creates a Dispatcher keeping the last historySize commands.
func New(historySize int) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Kind]HandlerFunc),
		history:  NewHistory(historySize),
	}
}

// Register sets the handler for a command kind, replacing any previous one.
func (d *Dispatcher) Register(kind Kind, fn HandlerFunc) *Dispatcher {
	d.handlers[kind] = fn
	return d
}

// Dispatch executes cmd. KindNone is a no-op and is not recorded;
// KindConsume is recorded as executed without running a handler.
// A handler returning ErrStale marks the command skipped and yields nil.
func (d *Dispatcher) Dispatch(cmd Command) error {
	if cmd.IsNone() {
		return nil
	}
	if cmd.Kind == KindConsume {
		d.history.Push(cmd, OutcomeExecuted)
		return nil
	}

	fn, ok := d.handlers[cmd.Kind]
	if !ok {
		d.history.Push(cmd, OutcomeFailed)
		return fmt.Errorf("%w: %s", ErrNoHandler, cmd.Kind)
	}

	if err := fn(cmd); err != nil {
		if errors.Is(err, ErrStale) {
			d.history.Push(cmd, OutcomeSkipped)
			return nil
		}
		d.history.Push(cmd, OutcomeFailed)
		return fmt.Errorf("dispatch: %s: %w", cmd.Kind, err)
	}

	d.history.Push(cmd, OutcomeExecuted)
	return nil
}

// History returns the record of dispatched commands.
func (d *Dispatcher) History() *History {
	return d.history
}
