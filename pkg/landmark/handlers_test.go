package landmark_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

// recorder registers landmarks whose callbacks log what they receive.
type recorder struct {
	calls []string
}

func (r *recorder) landmark(el landmark.Element, role landmark.Role, label string) landmark.Landmark {
	name := id(el)
	return landmark.Landmark{
		Element: el,
		Role:    role,
		Label:   label,
		Focus:   func(dir landmark.Direction) { r.calls = append(r.calls, "focus "+name+" "+dir.String()) },
		Blur:    func() { r.calls = append(r.calls, "blur "+name) },
	}
}

func TestF6MovesBetweenLandmarks(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "main"), landmark.RoleMain, ""))
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))

	doc.Focus(byID(t, doc, "main-link"))

	ev := doc.KeyDown("F6", landmark.ModNone)
	require.True(t, ev.DefaultPrevented())
	require.True(t, ev.PropagationStopped())
	require.Equal(t, []string{"focus nav forward"}, rec.calls)

	rec.calls = nil
	ev = doc.KeyDown("F6", landmark.ModShift)
	require.True(t, ev.DefaultPrevented())
	require.Equal(t, []string{"focus nav backward"}, rec.calls)
	require.EqualValues(t, 2, reg.Stats().Navigations)
}

func TestOtherKeysAreIgnored(t *testing.T) {
	doc, reg := threeLandmarks(t)
	doc.Focus(byID(t, doc, "main-link"))

	ev := doc.KeyDown("F7", landmark.ModNone)
	require.False(t, ev.DefaultPrevented())
	require.True(t, reg.OnKeyDown(nil).IsNone())
}

func TestNavigationKeyOption(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc, landmark.WithNavigationKey("F8"))
	add(t, reg, doc, "main", landmark.RoleMain, "")

	require.True(t, reg.OnKeyDown(landmark.NewKeyEvent("F6", 0, nil)).IsNone())
	cmd := reg.OnKeyDown(landmark.NewKeyEvent("F8", 0, nil))
	require.Equal(t, dispatch.KindFocusLandmark, cmd.Kind)
}

func TestF6RestoresLastFocused(t *testing.T) {
	doc, reg := threeLandmarks(t)
	nav2 := byID(t, doc, "nav-2")

	doc.Focus(nav2)
	l, ok := reg.Get(byID(t, doc, "nav"))
	require.True(t, ok)
	require.Same(t, nav2, l.LastFocused)

	doc.Focus(byID(t, doc, "main-link"))
	doc.KeyDown("F6", landmark.ModNone)
	require.Equal(t, "nav-2", id(doc.ActiveElement()))
}

func TestFocusOnLandmarkRootDoesNotSetLastFocused(t *testing.T) {
	doc, reg := threeLandmarks(t)
	nav := byID(t, doc, "nav")

	doc.Focus(nav)
	l, _ := reg.Get(nav)
	require.Nil(t, l.LastFocused)
}

func TestF6FallsBackWhenLastFocusedDetached(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "main"), landmark.RoleMain, ""))
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))

	nav1 := byID(t, doc, "nav-1")
	doc.Focus(nav1)
	doc.Focus(byID(t, doc, "main-link"))
	doc.Detach(nav1)
	rec.calls = nil

	doc.KeyDown("F6", landmark.ModNone)
	require.Equal(t, []string{"focus nav forward"}, rec.calls)
}

func TestAltF6FocusesMain(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "main"), landmark.RoleMain, ""))
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))
	reg.Add(rec.landmark(byID(t, doc, "search"), landmark.RoleSearch, ""))

	doc.Focus(byID(t, doc, "nav-1"))
	ev := doc.KeyDown("F6", landmark.ModAlt)
	require.True(t, ev.DefaultPrevented())
	require.Equal(t, []string{"focus main forward"}, rec.calls)
}

func TestAltF6WithoutMainClaimsKey(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	add(t, reg, doc, "nav", landmark.RoleNavigation, "")
	add(t, reg, doc, "side", landmark.RoleComplementary, "")

	nav1 := byID(t, doc, "nav-1")
	doc.Focus(nav1)
	ev := doc.KeyDown("F6", landmark.ModAlt)
	require.True(t, ev.DefaultPrevented())
	require.True(t, ev.PropagationStopped())
	require.Same(t, nav1, doc.ActiveElement())
}

func TestAltF6RespectsCanceledBoundary(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	add(t, reg, doc, "main", landmark.RoleMain, "")
	add(t, reg, doc, "nav", landmark.RoleNavigation, "")

	fired := 0
	doc.OnBoundary(doc.Root(), func(ev *htmldoc.BoundaryEvent) {
		fired++
		ev.PreventDefault()
	})

	nav1 := byID(t, doc, "nav-1")
	doc.Focus(nav1)
	ev := doc.KeyDown("F6", landmark.ModAlt)
	require.Equal(t, 1, fired)
	require.False(t, ev.DefaultPrevented())
	require.Same(t, nav1, doc.ActiveElement())
}

func TestF6WithCanceledBoundaryIsNotHandled(t *testing.T) {
	doc, _ := threeLandmarks(t)
	doc.OnBoundary(doc.Root(), func(ev *htmldoc.BoundaryEvent) { ev.PreventDefault() })

	q := byID(t, doc, "q")
	doc.Focus(q)
	ev := doc.KeyDown("F6", landmark.ModNone)
	require.False(t, ev.DefaultPrevented())
	require.Same(t, q, doc.ActiveElement())
}

func TestFocusLeavingLandmarkRootBlursIt(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "main"), landmark.RoleMain, ""))
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))

	doc.Focus(byID(t, doc, "nav"))
	doc.Focus(byID(t, doc, "main-link"))
	require.Equal(t, []string{"blur nav"}, rec.calls)
}

func TestFocusLeavingDescendantDoesNotBlur(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))

	doc.Focus(byID(t, doc, "nav-1"))
	doc.Focus(byID(t, doc, "nav-2"))
	doc.Blur()
	require.Empty(t, rec.calls)
}

func TestFocusOutToNothingBlursRoot(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "nav"), landmark.RoleNavigation, ""))

	doc.Focus(byID(t, doc, "nav"))
	doc.Blur()
	require.Equal(t, []string{"blur nav"}, rec.calls)
}

func TestFocusHandlersReturnCommands(t *testing.T) {
	doc, reg := threeLandmarks(t)
	nav := byID(t, doc, "nav")
	nav1 := byID(t, doc, "nav-1")

	cmd := reg.OnFocusIn(landmark.FocusEvent{Target: byID(t, doc, "q"), Related: nav})
	require.Equal(t, dispatch.KindBlurLandmark, cmd.Kind)
	require.Same(t, nav, cmd.Element)

	cmd = reg.OnFocusIn(landmark.FocusEvent{Target: byID(t, doc, "q"), Related: nav1})
	require.True(t, cmd.IsNone())

	cmd = reg.OnFocusOut(landmark.FocusEvent{Target: nav, Related: nav1})
	require.True(t, cmd.IsNone())

	cmd = reg.OnFocusOut(landmark.FocusEvent{Target: nav})
	require.Equal(t, dispatch.KindBlurLandmark, cmd.Kind)
}

func TestDispatchSkipsDetachedTargets(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	nav := byID(t, doc, "nav")
	nav1 := byID(t, doc, "nav-1")
	reg.Add(rec.landmark(nav, landmark.RoleNavigation, ""))

	doc.Detach(nav)

	require.NoError(t, reg.Dispatch(dispatch.FocusLandmark(nav, landmark.Forward)))
	require.NoError(t, reg.Dispatch(dispatch.BlurLandmark(nav)))
	require.NoError(t, reg.Dispatch(dispatch.MoveFocus(nav1)))
	require.Empty(t, rec.calls)
	require.Nil(t, doc.ActiveElement())

	for _, e := range reg.History().Entries() {
		require.Equal(t, dispatch.OutcomeSkipped, e.Outcome)
	}
}

func TestF6ClaimsKeyWhenTargetDetached(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	add(t, reg, doc, "main", landmark.RoleMain, "")
	nav := add(t, reg, doc, "nav", landmark.RoleNavigation, "")
	doc.Detach(nav)

	cmd := reg.OnKeyDown(landmark.NewKeyEvent("F6", 0, byID(t, doc, "main-link")))
	require.Equal(t, dispatch.KindConsume, cmd.Kind)
	require.NoError(t, reg.Dispatch(cmd))
	require.Equal(t, dispatch.OutcomeExecuted, reg.History().Peek().Outcome)
}

func TestFocusLandmarkWithoutCallbackMovesFocus(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	add(t, reg, doc, "main", landmark.RoleMain, "")

	doc.KeyDown("F6", landmark.ModNone)
	require.Equal(t, "main", id(doc.ActiveElement()))
}

func TestFocusLandmarkDirectly(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)
	rec := &recorder{}
	reg.Add(rec.landmark(byID(t, doc, "search"), landmark.RoleSearch, ""))

	require.NoError(t, reg.FocusLandmark(byID(t, doc, "search"), landmark.Backward))
	require.Equal(t, []string{"focus search backward"}, rec.calls)

	err := reg.FocusLandmark(byID(t, doc, "nav"), landmark.Forward)
	require.ErrorIs(t, err, landmark.ErrNotRegistered)
}
