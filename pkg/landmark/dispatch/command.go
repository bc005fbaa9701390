package dispatch

import (
	"fmt"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// Kind identifies the variant of a Command.
type Kind int

const (
	KindNone          Kind = iota // Nothing to do; the triggering event is left alone
	KindMoveFocus                 // Move input focus to Element
	KindFocusLandmark             // Invoke the focus callback of the landmark rooted at Element
	KindBlurLandmark              // Invoke the blur callback of the landmark rooted at Element
	KindConsume                   // Mark the triggering event handled without moving focus
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMoveFocus:
		return "move-focus"
	case KindFocusLandmark:
		return "focus-landmark"
	case KindBlurLandmark:
		return "blur-landmark"
	case KindConsume:
		return "consume"
	default:
		return "unknown"
	}
}

// Command is a decision produced by an event handler.
// Element is an opaque host element handle; Direction is only meaningful
// for KindFocusLandmark.
type Command struct {
	Kind      Kind
	Element   any
	Direction constants.Direction
}

// None returns the empty command.
func None() Command {
	return Command{Kind: KindNone}
}

// MoveFocus returns a command that focuses el directly.
func MoveFocus(el any) Command {
	return Command{Kind: KindMoveFocus, Element: el}
}

// FocusLandmark returns a command that asks the landmark rooted at el to
// take focus, entering from the given direction.
func FocusLandmark(el any, dir constants.Direction) Command {
	return Command{Kind: KindFocusLandmark, Element: el, Direction: dir}
}

// BlurLandmark returns a command that tells the landmark rooted at el it
// lost focus.
func BlurLandmark(el any) Command {
	return Command{Kind: KindBlurLandmark, Element: el}
}

// Consume returns a command that claims the triggering event but has no
// effect of its own.
func Consume() Command {
	return Command{Kind: KindConsume}
}

// IsNone returns true if the command does nothing.
func (c Command) IsNone() bool {
	return c.Kind == KindNone
}

func (c Command) String() string {
	switch c.Kind {
	case KindNone, KindConsume:
		return c.Kind.String()
	case KindFocusLandmark:
		return fmt.Sprintf("%s(%v, %s)", c.Kind, c.Element, c.Direction)
	default:
		return fmt.Sprintf("%s(%v)", c.Kind, c.Element)
	}
}
