// Package htmldoc hosts the landmark registry on an in-memory HTML
// document parsed with golang.org/x/net/html.
//
// Element handles are *html.Node values. The document keeps its own focus
// state and delivers key, focus and boundary events to listeners the way a
// browser would, which makes it suitable both for tests and for static
// analysis of HTML pages.
package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// HiddenFunc reports whether a single node (not its ancestors) is hidden
// from the accessibility tree.
type HiddenFunc func(n *html.Node) bool

// AriaHidden hides nodes carrying aria-hidden="true".
func AriaHidden(n *html.Node) bool {
	v, ok := Attr(n, "aria-hidden")
	return ok && strings.EqualFold(strings.TrimSpace(v), "true")
}

// HiddenBy hides nodes carrying aria-hidden="true" or any of the named
// boolean attributes, such as "hidden" or "inert".
func HiddenBy(attrs ...string) HiddenFunc {
	return func(n *html.Node) bool {
		if AriaHidden(n) {
			return true
		}
		for _, key := range attrs {
			if _, ok := Attr(n, key); ok {
				return true
			}
		}
		return false
	}
}

// BoundaryEvent is the event fired when landmark navigation is about to
// wrap around. Handlers cancel the wrap with PreventDefault.
type BoundaryEvent struct {
	Type          string
	Direction     constants.Direction
	Target        *html.Node
	CurrentTarget *html.Node

	defaultPrevented bool
}

// PreventDefault cancels the wrap-around.
func (e *BoundaryEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented returns true if a handler canceled the event.
func (e *BoundaryEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// BoundaryHandler receives boundary events bubbling through a node.
type BoundaryHandler func(ev *BoundaryEvent)

// Document is a landmark.Document over an HTML node tree.
type Document struct {
	root      *html.Node
	active    *html.Node
	listeners []landmark.Listener
	boundary  map[*html.Node][]BoundaryHandler
	hidden    HiddenFunc
}

// Option configures a Document.
type Option func(*Document)

// WithHidden replaces the hidden-node predicate.
func WithHidden(fn HiddenFunc) Option {
	return func(d *Document) {
		if fn != nil {
			d.hidden = fn
		}
	}
}

// New wraps an already parsed document node.
func New(root *html.Node, opts ...Option) *Document {
	d := &Document{
		root:     root,
		boundary: make(map[*html.Node][]BoundaryHandler),
		hidden:   AriaHidden,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse reads an HTML document.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, landmark.NewHostError("parse", err)
	}
	return New(root, opts...), nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the body element, or the root if there is none.
func (d *Document) Body() *html.Node {
	if body := d.Find(func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "body" }); body != nil {
		return body
	}
	return d.root
}

// ByID returns the element with the given id attribute.
func (d *Document) ByID(id string) *html.Node {
	return d.Find(func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// Find returns the first node in document order matching fn.
func (d *Document) Find(fn func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if fn(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Detach removes n and its subtree from the document.
func (d *Document) Detach(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	if d.active != nil && (d.active == n || contains(n, d.active)) {
		d.active = nil
	}
	n.Parent.RemoveChild(n)
}

// ComparePosition implements landmark.Tree.
func (d *Document) ComparePosition(a, b landmark.Element) landmark.Position {
	na, nb := node(a), node(b)
	if na == nil || nb == nil {
		return landmark.PositionDisconnected
	}
	return comparePosition(na, nb)
}

// Parent implements landmark.Tree. The document node has no parent.
func (d *Document) Parent(el landmark.Element) landmark.Element {
	n := node(el)
	if n == nil || n.Parent == nil {
		return nil
	}
	return n.Parent
}

// IsConnected implements landmark.Tree.
func (d *Document) IsConnected(el landmark.Element) bool {
	n := node(el)
	if n == nil {
		return false
	}
	return n == d.root || contains(d.root, n)
}

// IsHidden implements landmark.Tree.
func (d *Document) IsHidden(el landmark.Element) bool {
	for n := node(el); n != nil; n = n.Parent {
		if n.Type == html.ElementNode && d.hidden(n) {
			return true
		}
	}
	return false
}

func node(el landmark.Element) *html.Node {
	n, _ := el.(*html.Node)
	return n
}

func contains(ancestor, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// comparePosition returns the position of b relative to a.
func comparePosition(a, b *html.Node) landmark.Position {
	if a == b {
		return 0
	}

	pa, pb := ancestry(a), ancestry(b)
	if pa[0] != pb[0] {
		return landmark.PositionDisconnected
	}

	k := 0
	for k < len(pa) && k < len(pb) && pa[k] == pb[k] {
		k++
	}
	switch {
	case k == len(pb):
		return landmark.PositionContains | landmark.PositionPreceding
	case k == len(pa):
		return landmark.PositionContainedBy | landmark.PositionFollowing
	}

	for s := pa[k].NextSibling; s != nil; s = s.NextSibling {
		if s == pb[k] {
			return landmark.PositionFollowing
		}
	}
	return landmark.PositionPreceding
}

// ancestry returns the path from the tree root down to n, inclusive.
func ancestry(n *html.Node) []*html.Node {
	var path []*html.Node
	for ; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
