package landmark

import (
	"strings"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// Element is an opaque handle to a live element of the host document.
// Handles are compared with ==, so hosts must use comparable values
// (pointers or small structs) that stay stable for the element's lifetime.
// Registry.Add ignores a handle whose type is not comparable.
type Element = any

// Position describes where one element sits relative to another in
// document order. Values combine like DOM compareDocumentPosition flags.
type Position uint8

const (
	PositionDisconnected Position = 1 << iota
	PositionPreceding
	PositionFollowing
	PositionContains
	PositionContainedBy
)

// Has returns true if p contains all bits of q.
func (p Position) Has(q Position) bool {
	return p&q == q
}

// Tree is the read-only view of the host element tree the registry needs.
type Tree interface {
	// ComparePosition returns the position of b relative to a.
	// PositionPreceding means b comes before a; PositionContains means b is
	// an ancestor of a.
	ComparePosition(a, b Element) Position

	// Parent returns the parent element, or nil at the root.
	Parent(el Element) Element

	// IsConnected reports whether el is still attached to the document.
	IsConnected(el Element) bool

	// IsHidden reports whether el or one of its ancestors is excluded from
	// the accessibility tree.
	IsHidden(el Element) bool
}

// Document is a live host document: a Tree that can also move focus,
// deliver input events and fire the navigation boundary event.
type Document interface {
	Tree

	// Focus moves input focus to el.
	Focus(el Element)

	// AddListener attaches capture-phase key and focus handlers.
	AddListener(l Listener)

	// RemoveListener detaches a listener added with AddListener.
	RemoveListener(l Listener)

	// DispatchBoundary fires the bubbling, cancelable boundary event on from.
	// It returns false if a handler canceled the event.
	DispatchBoundary(from Element, dir constants.Direction) bool
}

// Listener receives capture-phase input events from a Document.
type Listener interface {
	KeyDown(ev *KeyEvent)
	FocusIn(ev FocusEvent)
	FocusOut(ev FocusEvent)
}

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key.
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a representation like "Alt+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is a key press delivered to listeners.
type KeyEvent struct {
	Key       string // Key name, e.g. "F6"
	Modifiers Modifier
	Target    Element // Element that had focus when the key was pressed

	defaultPrevented   bool
	propagationStopped bool
}

// NewKeyEvent creates a key event aimed at target.
func NewKeyEvent(key string, mods Modifier, target Element) *KeyEvent {
	return &KeyEvent{Key: key, Modifiers: mods, Target: target}
}

// PreventDefault suppresses the host's default action for the key.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation stops delivery to later listeners.
func (e *KeyEvent) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented returns true if a listener called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped returns true if a listener called StopPropagation.
func (e *KeyEvent) PropagationStopped() bool {
	return e.propagationStopped
}

func (e *KeyEvent) String() string {
	if e.Modifiers == ModNone {
		return e.Key
	}
	return e.Modifiers.String() + "+" + e.Key
}

// FocusEvent reports a focus change.
// For focus-in, Target gained focus and Related lost it. For focus-out,
// Target lost focus and Related is gaining it. A nil Related means focus
// came from, or went to, nothing in particular (the document itself).
type FocusEvent struct {
	Target  Element
	Related Element
}
