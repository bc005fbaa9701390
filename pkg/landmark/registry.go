package landmark

import (
	"log/slog"
	"reflect"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/internal"
)

// Registry tracks the landmarks of one document in document order and
// drives keyboard navigation between them.
//
// A Registry is not safe for concurrent mutation. Hosts call it from their
// UI thread, the same place their input and focus events are delivered.
type Registry struct {
	doc       Document
	landmarks []*Landmark
	listener  *registryListener
	listening atomic.Bool

	dispatcher    *dispatch.Dispatcher
	navigationKey string
	historySize   int

	diagnostics  []Diagnostic
	onDiagnostic func(Diagnostic)
	logger       *slog.Logger
	messages     *internal.Messages
	locales      []string

	stats registryStats
}

type registryStats struct {
	added       atomic.Int64
	removed     atomic.Int64
	navigations atomic.Int64
	wraps       atomic.Int64
}

// Stats is a snapshot of registry counters.
type Stats struct {
	Added       int64 // Landmarks registered
	Removed     int64 // Landmarks unregistered
	Navigations int64 // Navigation keys that resolved to a target
	Wraps       int64 // Times navigation ran past either end
}

// New creates a registry for doc. Listeners are attached to doc only while
// at least one landmark is registered.
func New(doc Document, opts ...Option) *Registry {
	r := &Registry{
		doc:           doc,
		navigationKey: constants.DefaultNavigationKey,
		historySize:   dispatch.DefaultHistorySize,
		logger:        internal.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.messages == nil {
		m, err := internal.NewMessages(r.locales...)
		if err != nil {
			r.logger.Error("Failed to load diagnostic messages", "error", err)
			m = internal.MustMessages()
		}
		r.messages = m
	}

	r.listener = &registryListener{registry: r}
	r.dispatcher = dispatch.New(r.historySize).
		Register(dispatch.KindMoveFocus, r.moveFocus).
		Register(dispatch.KindFocusLandmark, r.focusLandmark).
		Register(dispatch.KindBlurLandmark, r.blurLandmark)

	return r
}

// Document returns the host document.
func (r *Registry) Document() Document {
	return r.doc
}

// Add registers a landmark. Registering an element twice is a no-op.
// The landmark is inserted at its current document position. Elements whose
// type cannot be compared with == are rejected.
func (r *Registry) Add(l Landmark) {
	if l.Element == nil {
		r.logger.Debug("Ignoring landmark without element", "role", l.Role.String())
		return
	}
	if t := reflect.TypeOf(l.Element); !t.Comparable() {
		r.logger.Error("Ignoring landmark with non-comparable element", "role", l.Role.String(), "type", t.String())
		return
	}
	if r.indexOf(l.Element) >= 0 {
		return
	}

	r.setupIfNeeded()

	entry := l
	index := r.insertionIndex(entry.Element)
	r.landmarks = append(r.landmarks, nil)
	copy(r.landmarks[index+1:], r.landmarks[index:])
	r.landmarks[index] = &entry
	r.stats.added.Inc()

	r.logger.Debug("Landmark added", "role", entry.Role.String(), "label", entry.Label, "index", index)

	if entry.Role == RoleMain {
		r.checkMain()
	}
	r.checkLabels(entry.Role)
}

// insertionIndex binary searches for the slot that keeps landmarks in
// ascending document order. Positions are compared live on every insert
// because earlier positions may be stale.
func (r *Registry) insertionIndex(el Element) int {
	start, end := 0, len(r.landmarks)-1
	for start <= end {
		mid := (start + end) / 2
		pos := r.doc.ComparePosition(el, r.landmarks[mid].Element)
		if pos&(PositionPreceding|PositionContains) != 0 {
			start = mid + 1
		} else {
			end = mid - 1
		}
	}
	return start
}

// Update overwrites fields of the landmark registered for el and
// re-validates labels for its role. Unknown elements are ignored.
func (r *Registry) Update(el Element, fields ...Field) {
	i := r.indexOf(el)
	if i < 0 {
		return
	}

	l := r.landmarks[i]
	wasMain := l.Role == RoleMain
	for _, f := range fields {
		f(l)
	}
	l.Element = el

	if l.Role == RoleMain && !wasMain {
		r.checkMain()
	}
	r.checkLabels(l.Role)
}

// Remove unregisters the landmark for el. Listeners are detached when the
// last landmark goes away.
func (r *Registry) Remove(el Element) {
	i := r.indexOf(el)
	if i < 0 {
		return
	}

	copy(r.landmarks[i:], r.landmarks[i+1:])
	r.landmarks[len(r.landmarks)-1] = nil
	r.landmarks = r.landmarks[:len(r.landmarks)-1]
	r.stats.removed.Inc()

	if len(r.landmarks) == 0 {
		r.teardownIfNeeded()
	}
}

// Len returns the number of registered landmarks.
func (r *Registry) Len() int {
	return len(r.landmarks)
}

// Landmarks returns a snapshot of every landmark in document order.
func (r *Registry) Landmarks() []Landmark {
	out := make([]Landmark, len(r.landmarks))
	for i, l := range r.landmarks {
		out[i] = *l
	}
	return out
}

// Get returns the landmark registered for el.
func (r *Registry) Get(el Element) (Landmark, bool) {
	if i := r.indexOf(el); i >= 0 {
		return *r.landmarks[i], true
	}
	return Landmark{}, false
}

// LandmarksByRole returns the landmarks with role, in document order.
func (r *Registry) LandmarksByRole(role Role) []Landmark {
	var out []Landmark
	for _, l := range r.landmarks {
		if l.Role == role {
			out = append(out, *l)
		}
	}
	return out
}

// LandmarkByRole returns the first landmark with role in document order.
func (r *Registry) LandmarkByRole(role Role) (Landmark, bool) {
	for _, l := range r.landmarks {
		if l.Role == role {
			return *l, true
		}
	}
	return Landmark{}, false
}

// ClosestLandmark returns the landmark whose element is el or its nearest
// registered ancestor.
func (r *Registry) ClosestLandmark(el Element) (Landmark, bool) {
	if i := r.closestIndex(el); i >= 0 {
		return *r.landmarks[i], true
	}
	return Landmark{}, false
}

func (r *Registry) closestIndex(el Element) int {
	for cur := el; cur != nil; cur = r.doc.Parent(cur) {
		if i := r.indexOf(cur); i >= 0 {
			return i
		}
	}
	return -1
}

func (r *Registry) indexOf(el Element) int {
	if el == nil {
		return -1
	}
	for i, l := range r.landmarks {
		if l.Element == el {
			return i
		}
	}
	return -1
}

// Listening reports whether the registry's listener is attached.
func (r *Registry) Listening() bool {
	return r.listening.Load()
}

// Stats returns a snapshot of the registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Added:       r.stats.added.Load(),
		Removed:     r.stats.removed.Load(),
		Navigations: r.stats.navigations.Load(),
		Wraps:       r.stats.wraps.Load(),
	}
}

func (r *Registry) setupIfNeeded() {
	if !r.listening.CompareAndSwap(false, true) {
		return
	}
	r.doc.AddListener(r.listener)
	r.logger.Debug("Landmark listeners attached")
}

func (r *Registry) teardownIfNeeded() {
	if !r.listening.CompareAndSwap(true, false) {
		return
	}
	r.doc.RemoveListener(r.listener)
	r.logger.Debug("Landmark listeners detached")
}
