package chromium

import (
	"context"
	"time"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// DefaultPollInterval is how often Run collects queued page events.
const DefaultPollInterval = 50 * time.Millisecond

// record is one event queued by the page script.
type record struct {
	Type    string `json:"type"`
	Key     string `json:"key"`
	Shift   bool   `json:"shift"`
	Alt     bool   `json:"alt"`
	Ctrl    bool   `json:"ctrl"`
	Meta    bool   `json:"meta"`
	Target  Handle `json:"target"`
	Related Handle `json:"related"`

	// Boundary is the result of the boundary event the page fired for a
	// keydown, nil when none fired.
	Boundary *bool `json:"boundary"`
}

func (r record) modifiers() landmark.Modifier {
	var mods landmark.Modifier
	if r.Shift {
		mods |= landmark.ModShift
	}
	if r.Ctrl {
		mods |= landmark.ModCtrl
	}
	if r.Alt {
		mods |= landmark.ModAlt
	}
	if r.Meta {
		mods |= landmark.ModMeta
	}
	return mods
}

// AddListener implements landmark.Document. The first listener turns on
// key interception in the page.
func (d *Document) AddListener(l landmark.Listener) {
	for _, existing := range d.listeners {
		if existing == l {
			return
		}
	}
	d.listeners = append(d.listeners, l)
	if len(d.listeners) == 1 {
		d.setKeys(d.activeKeys())
	}
}

// RemoveListener implements landmark.Document. Removing the last listener
// hands the navigation keys back to the page.
func (d *Document) RemoveListener(l landmark.Listener) {
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			if len(d.listeners) == 0 {
				d.setKeys(d.activeKeys())
			}
			return
		}
	}
}

func (d *Document) setKeys(keys []string) {
	if _, err := d.eval("set_keys", jsSetKeys, keys); err != nil {
		d.logFailure(err, "keys", keys)
	}
}

func (d *Document) activeKeys() []string {
	if len(d.listeners) == 0 {
		return []string{}
	}
	return d.keys
}

// Track makes the page check key presses against reg's landmarks, so a
// navigation key with nowhere to go keeps its default action. The landmark
// list reaches the page on every Sync.
func (d *Document) Track(reg *landmark.Registry) {
	d.registry = reg
}

// trackedHandles returns the handles of the tracked registry in document
// order, or nil when no registry is tracked.
func (d *Document) trackedHandles() []Handle {
	if d.registry == nil {
		return nil
	}
	handles := make([]Handle, 0, d.registry.Len())
	for _, l := range d.registry.Landmarks() {
		if h := handle(l.Element); h != 0 {
			handles = append(handles, h)
		}
	}
	return handles
}

// Sync collects the events the page queued since the last call and
// delivers them to the listeners in order. It returns the number of
// events delivered. Key interception is re-armed on every call, since a
// navigation installs a fresh page script.
func (d *Document) Sync() (int, error) {
	res, err := d.eval("sync", jsDrain, d.activeKeys(), d.trackedHandles(), d.hiddenSelector(), constants.NavigationEventName)
	if err != nil {
		return 0, err
	}

	var records []record
	if err := decode(res, &records); err != nil {
		return 0, landmark.NewHostError("sync", err)
	}

	for _, r := range records {
		d.deliver(r)
	}
	return len(records), nil
}

func (d *Document) deliver(r record) {
	listeners := make([]landmark.Listener, len(d.listeners))
	copy(listeners, d.listeners)

	switch r.Type {
	case "keydown":
		ev := landmark.NewKeyEvent(r.Key, r.modifiers(), element(r.Target))
		d.boundary = r.Boundary
		defer func() { d.boundary = nil }()
		for _, l := range listeners {
			l.KeyDown(ev)
			if ev.PropagationStopped() {
				break
			}
		}
	case "focusin":
		ev := landmark.FocusEvent{Target: element(r.Target), Related: element(r.Related)}
		for _, l := range listeners {
			l.FocusIn(ev)
		}
	case "focusout":
		ev := landmark.FocusEvent{Target: element(r.Target), Related: element(r.Related)}
		for _, l := range listeners {
			l.FocusOut(ev)
		}
	default:
		d.logger.Debug("Ignoring unknown page event", "type", r.Type)
	}
}

// Run calls Sync every interval until ctx is done. Sync failures are
// logged and polling continues, so a navigation that replaces the document
// does not end the loop.
func (d *Document) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.Sync(); err != nil {
				d.logger.Warn("Failed to collect page events", "error", err)
			}
		}
	}
}
