// Package chromium hosts the landmark registry on a live Chromium page
// driven over the DevTools protocol with go-rod.
//
// Element handles are Handle values: small integers the page assigns to
// elements the first time the adapter sees them. Key and focus events are
// queued in the page and delivered to listeners by Sync or Run, so every
// registry call happens on the goroutine that drives the document.
//
// The navigation keys are intercepted in the page while a listener is
// attached. Once Track (or Bind) names the registry, the page checks that
// navigation has a target before suppressing the key's default action.
package chromium

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// Handle identifies an element of the page. The zero Handle is no element.
type Handle int

// DefaultTimeout bounds every protocol round trip.
const DefaultTimeout = 5 * time.Second

// Document is a landmark.Document over a Chromium page.
type Document struct {
	page      *rod.Page
	timeout   time.Duration
	keys      []string
	hidden    []string
	logger    *slog.Logger
	listeners []landmark.Listener
	registry  *landmark.Registry

	// boundary holds the page's boundary result while a keydown is delivered.
	boundary *bool
}

// Option configures a Document.
type Option func(*Document)

// WithTimeout sets the per-call protocol timeout.
func WithTimeout(d time.Duration) Option {
	return func(doc *Document) {
		if d > 0 {
			doc.timeout = d
		}
	}
}

// WithKeys sets the keys intercepted in the page. Use the registry's
// navigation key.
func WithKeys(keys ...string) Option {
	return func(doc *Document) {
		if len(keys) > 0 {
			doc.keys = keys
		}
	}
}

// WithHiddenAttributes adds boolean attributes, such as "hidden" or
// "inert", that hide an element in addition to aria-hidden.
func WithHiddenAttributes(attrs ...string) Option {
	return func(doc *Document) {
		doc.hidden = append(doc.hidden, attrs...)
	}
}

// WithLogger sets the logger protocol failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(doc *Document) {
		if logger != nil {
			doc.logger = logger
		}
	}
}

// New installs the adapter script in page, for the current document and
// every document the page navigates to later.
func New(page *rod.Page, opts ...Option) (*Document, error) {
	d := &Document{
		page:    page,
		timeout: DefaultTimeout,
		keys:    []string{constants.DefaultNavigationKey},
		logger:  landmark.GetLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if _, err := page.EvalOnNewDocument("(" + installScript + ")()"); err != nil {
		return nil, landmark.NewHostError("install", err)
	}
	if _, err := d.eval("install", installScript); err != nil {
		return nil, err
	}
	return d, nil
}

// Page returns the underlying page.
func (d *Document) Page() *rod.Page {
	return d.page
}

func (d *Document) eval(op, js string, args ...any) (*proto.RuntimeRemoteObject, error) {
	res, err := d.page.Timeout(d.timeout).Eval(js, args...)
	if err != nil {
		return nil, landmark.NewHostError(op, err)
	}
	return res, nil
}

// decode unmarshals the JSON value of a call result into v.
func decode(res *proto.RuntimeRemoteObject, v any) error {
	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (d *Document) logFailure(err error, attrs ...any) {
	d.logger.Error("Chromium call failed", append([]any{"error", err}, attrs...)...)
}

func handle(el landmark.Element) Handle {
	h, _ := el.(Handle)
	return h
}

// element converts a handle into a landmark.Element, mapping the zero
// handle to a nil interface.
func element(h Handle) landmark.Element {
	if h == 0 {
		return nil
	}
	return h
}

// ComparePosition implements landmark.Tree.
func (d *Document) ComparePosition(a, b landmark.Element) landmark.Position {
	ha, hb := handle(a), handle(b)
	if ha == 0 || hb == 0 {
		return landmark.PositionDisconnected
	}
	if ha == hb {
		return 0
	}

	res, err := d.eval("compare_position", jsCompare, ha, hb)
	if err != nil {
		d.logFailure(err, "a", ha, "b", hb)
		return landmark.PositionDisconnected
	}
	return landmark.Position(res.Value.Int())
}

// Parent implements landmark.Tree.
func (d *Document) Parent(el landmark.Element) landmark.Element {
	h := handle(el)
	if h == 0 {
		return nil
	}

	res, err := d.eval("parent", jsParent, h)
	if err != nil {
		d.logFailure(err, "element", h)
		return nil
	}
	return element(Handle(res.Value.Int()))
}

// IsConnected implements landmark.Tree.
func (d *Document) IsConnected(el landmark.Element) bool {
	h := handle(el)
	if h == 0 {
		return false
	}

	res, err := d.eval("is_connected", jsConnected, h)
	if err != nil {
		d.logFailure(err, "element", h)
		return false
	}
	return res.Value.Bool()
}

// IsHidden implements landmark.Tree.
func (d *Document) IsHidden(el landmark.Element) bool {
	h := handle(el)
	if h == 0 {
		return true
	}

	res, err := d.eval("is_hidden", jsHidden, h, d.hiddenSelector())
	if err != nil {
		d.logFailure(err, "element", h)
		return false
	}
	return res.Value.Bool()
}

func (d *Document) hiddenSelector() string {
	selectors := []string{`[aria-hidden="true" i]`}
	for _, attr := range d.hidden {
		selectors = append(selectors, "["+attr+"]")
	}
	return strings.Join(selectors, ",")
}

// Focus implements landmark.Document. Elements that cannot take focus
// ignore the call, as in the browser.
func (d *Document) Focus(el landmark.Element) {
	h := handle(el)
	if h == 0 {
		return
	}
	if _, err := d.eval("focus", jsFocus, h); err != nil {
		d.logFailure(err, "element", h)
	}
}

// Blur removes focus from the active element.
func (d *Document) Blur() error {
	_, err := d.eval("blur", jsBlur)
	return err
}

// ActiveElement returns the focused element.
func (d *Document) ActiveElement() (landmark.Element, error) {
	res, err := d.eval("active_element", jsActive)
	if err != nil {
		return nil, err
	}
	return element(Handle(res.Value.Int())), nil
}

// Body returns the body element.
func (d *Document) Body() (landmark.Element, error) {
	res, err := d.eval("body", jsBody)
	if err != nil {
		return nil, err
	}
	return element(Handle(res.Value.Int())), nil
}

// Query returns handles for the elements matching a CSS selector, in
// document order.
func (d *Document) Query(selector string) ([]Handle, error) {
	res, err := d.eval("query", jsQuery, selector)
	if err != nil {
		return nil, err
	}
	var out []Handle
	if err := decode(res, &out); err != nil {
		return nil, landmark.NewHostError("query", err)
	}
	return out, nil
}

// DispatchBoundary implements landmark.Document. The event is a bubbling,
// cancelable CustomEvent whose detail carries the direction. While a page
// keydown is delivered the event has already fired in the page, and its
// result is returned instead of firing it again.
func (d *Document) DispatchBoundary(from landmark.Element, dir constants.Direction) bool {
	if d.boundary != nil {
		return *d.boundary
	}
	res, err := d.eval("dispatch_boundary", jsBoundary, handle(from), constants.NavigationEventName, dir.String())
	if err != nil {
		d.logFailure(err, "direction", dir.String())
		return true
	}
	return res.Value.Bool()
}

// Describe returns a short human-readable name for el.
func (d *Document) Describe(el landmark.Element) string {
	h := handle(el)
	if h == 0 {
		return "<nil>"
	}
	res, err := d.eval("describe", jsDescribe, h)
	if err != nil {
		return fmt.Sprintf("<element %d>", h)
	}
	return res.Value.Str()
}
