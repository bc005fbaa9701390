package htmldoc

import (
	"golang.org/x/net/html"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// AddListener implements landmark.Document. Adding the same listener twice
// has no effect.
func (d *Document) AddListener(l landmark.Listener) {
	for _, existing := range d.listeners {
		if existing == l {
			return
		}
	}
	d.listeners = append(d.listeners, l)
}

// RemoveListener implements landmark.Document.
func (d *Document) RemoveListener(l landmark.Listener) {
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of attached listeners.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// ActiveElement returns the focused node, or nil when nothing has focus.
func (d *Document) ActiveElement() *html.Node {
	return d.active
}

// Focus implements landmark.Document. Focus-out is delivered for the
// previously focused node, then focus-in for the new one. Focusing nil or a
// detached node does nothing.
func (d *Document) Focus(el landmark.Element) {
	n := node(el)
	if n == nil || n == d.active || !d.IsConnected(n) {
		return
	}

	prev := d.active
	d.active = n

	if prev != nil {
		d.focusOut(landmark.FocusEvent{Target: prev, Related: n})
	}
	d.focusIn(landmark.FocusEvent{Target: n, Related: elementOrNil(prev)})
}

// Blur clears focus, as when the user clicks on empty page space.
func (d *Document) Blur() {
	prev := d.active
	if prev == nil {
		return
	}
	d.active = nil
	d.focusOut(landmark.FocusEvent{Target: prev})
}

// KeyDown delivers a key press to the listeners and returns the event so
// callers can inspect whether its default action was prevented. The event
// targets the focused node, or the body when nothing has focus.
func (d *Document) KeyDown(key string, mods landmark.Modifier) *landmark.KeyEvent {
	target := d.active
	if target == nil {
		target = d.Body()
	}

	ev := landmark.NewKeyEvent(key, mods, target)
	for _, l := range d.snapshot() {
		l.KeyDown(ev)
		if ev.PropagationStopped() {
			break
		}
	}
	return ev
}

// OnBoundary registers a handler for boundary events reaching n.
// Register on the root to observe every boundary event.
func (d *Document) OnBoundary(n *html.Node, fn BoundaryHandler) {
	d.boundary[n] = append(d.boundary[n], fn)
}

// DispatchBoundary implements landmark.Document. The event bubbles from
// from up to the document node.
func (d *Document) DispatchBoundary(from landmark.Element, dir constants.Direction) bool {
	target := node(from)
	if target == nil {
		target = d.root
	}

	ev := &BoundaryEvent{
		Type:      constants.NavigationEventName,
		Direction: dir,
		Target:    target,
	}
	for n := target; n != nil; n = n.Parent {
		ev.CurrentTarget = n
		for _, fn := range d.boundary[n] {
			fn(ev)
		}
	}
	return !ev.DefaultPrevented()
}

func (d *Document) focusIn(ev landmark.FocusEvent) {
	for _, l := range d.snapshot() {
		l.FocusIn(ev)
	}
}

func (d *Document) focusOut(ev landmark.FocusEvent) {
	for _, l := range d.snapshot() {
		l.FocusOut(ev)
	}
}

// snapshot copies the listener list so handlers may add or remove
// listeners while an event is being delivered.
func (d *Document) snapshot() []landmark.Listener {
	out := make([]landmark.Listener, len(d.listeners))
	copy(out, d.listeners)
	return out
}

// elementOrNil avoids wrapping a nil *html.Node in a non-nil interface.
func elementOrNil(n *html.Node) landmark.Element {
	if n == nil {
		return nil
	}
	return n
}
