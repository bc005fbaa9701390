package landmark

import (
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
)

// OnKeyDown decides what the navigation key does. Shift navigates
// backward. Any other key, or a key press with nowhere to go, yields
// dispatch.None and must be left to the host. Once a target exists the key
// is claimed; Alt then sends focus to the main landmark instead.
func (r *Registry) OnKeyDown(ev *KeyEvent) dispatch.Command {
	if ev == nil || ev.Key != r.navigationKey {
		return dispatch.None()
	}

	dir := constants.DirectionFor(ev.Modifiers.Has(ModShift))
	next, ok := r.NextLandmark(ev.Target, dir)
	if !ok {
		return dispatch.None()
	}

	if ev.Modifiers.Has(ModAlt) {
		return r.focusMainCommand()
	}

	if next.LastFocused != nil && r.doc.IsConnected(next.LastFocused) {
		return dispatch.MoveFocus(next.LastFocused)
	}
	if r.doc.IsConnected(next.Element) {
		return dispatch.FocusLandmark(next.Element, dir)
	}
	return dispatch.Consume()
}

func (r *Registry) focusMainCommand() dispatch.Command {
	main, ok := r.LandmarkByRole(RoleMain)
	if !ok || !r.doc.IsConnected(main.Element) {
		return dispatch.Consume()
	}
	return dispatch.FocusLandmark(main.Element, Forward)
}

// OnFocusIn records the focused element as the last focused descendant of
// its landmark, and blurs the previous landmark when focus leaves that
// landmark's root element itself.
func (r *Registry) OnFocusIn(ev FocusEvent) dispatch.Command {
	if i := r.closestIndex(ev.Target); i >= 0 && r.landmarks[i].Element != ev.Target {
		r.landmarks[i].LastFocused = ev.Target
	}

	if ev.Related == nil {
		return dispatch.None()
	}
	if i := r.closestIndex(ev.Related); i >= 0 && r.landmarks[i].Element == ev.Related {
		return dispatch.BlurLandmark(ev.Related)
	}
	return dispatch.None()
}

// OnFocusOut blurs a landmark whose root element loses focus to nothing.
// Focus moving to another element is handled by OnFocusIn.
func (r *Registry) OnFocusOut(ev FocusEvent) dispatch.Command {
	if ev.Related != nil {
		return dispatch.None()
	}
	if i := r.closestIndex(ev.Target); i >= 0 && r.landmarks[i].Element == ev.Target {
		return dispatch.BlurLandmark(ev.Target)
	}
	return dispatch.None()
}

// Dispatch executes a command produced by one of the On* handlers.
// Commands whose target has left the document are skipped silently.
func (r *Registry) Dispatch(cmd dispatch.Command) error {
	return r.dispatcher.Dispatch(cmd)
}

// FocusLandmark focuses the landmark registered for el as if navigation
// had reached it in dir.
func (r *Registry) FocusLandmark(el Element, dir Direction) error {
	if r.indexOf(el) < 0 {
		return ErrNotRegistered
	}
	return r.Dispatch(dispatch.FocusLandmark(el, dir))
}

// History returns the record of executed commands.
func (r *Registry) History() *dispatch.History {
	return r.dispatcher.History()
}

func (r *Registry) execute(cmd dispatch.Command) {
	if err := r.Dispatch(cmd); err != nil {
		r.logger.Error("Failed to execute landmark command", "command", cmd.String(), "error", err)
	}
}

func (r *Registry) moveFocus(cmd dispatch.Command) error {
	if !r.doc.IsConnected(cmd.Element) {
		return ErrDetached
	}
	r.doc.Focus(cmd.Element)
	return nil
}

func (r *Registry) focusLandmark(cmd dispatch.Command) error {
	i := r.indexOf(cmd.Element)
	if i < 0 || !r.doc.IsConnected(cmd.Element) {
		return ErrDetached
	}

	if focus := r.landmarks[i].Focus; focus != nil {
		focus(cmd.Direction)
	} else {
		r.doc.Focus(cmd.Element)
	}
	return nil
}

func (r *Registry) blurLandmark(cmd dispatch.Command) error {
	i := r.indexOf(cmd.Element)
	if i < 0 || !r.doc.IsConnected(cmd.Element) {
		return ErrDetached
	}

	if blur := r.landmarks[i].Blur; blur != nil {
		blur()
	}
	return nil
}

// registryListener is attached to the document while landmarks exist.
type registryListener struct {
	registry *Registry
}

func (l *registryListener) KeyDown(ev *KeyEvent) {
	cmd := l.registry.OnKeyDown(ev)
	if cmd.IsNone() {
		return
	}

	ev.PreventDefault()
	ev.StopPropagation()
	l.registry.stats.navigations.Inc()
	l.registry.execute(cmd)
}

func (l *registryListener) FocusIn(ev FocusEvent) {
	l.registry.execute(l.registry.OnFocusIn(ev))
}

func (l *registryListener) FocusOut(ev FocusEvent) {
	l.registry.execute(l.registry.OnFocusOut(ev))
}
