package htmldoc

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

// Found is a landmark element discovered in a document.
type Found struct {
	Node  *html.Node
	Props landmark.Props
}

// Discover returns every landmark element in document order. Explicit role
// attributes win over implicit HTML semantics; the first recognised token
// of a role list is used.
func (d *Document) Discover() []Found {
	var found []Found
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if role, ok := d.roleOf(n); ok {
			label, _ := Attr(n, "aria-label")
			labelledBy, _ := Attr(n, "aria-labelledby")
			found = append(found, Found{
				Node: n,
				Props: landmark.Props{
					Role:           role,
					AriaLabel:      strings.TrimSpace(label),
					AriaLabelledBy: strings.TrimSpace(labelledBy),
				},
			})
		}
		return true
	})
	return found
}

func (d *Document) roleOf(n *html.Node) (landmark.Role, bool) {
	if explicit, ok := Attr(n, "role"); ok {
		return landmark.ExplicitRole(explicit)
	}

	_, hasLabel := Attr(n, "aria-label")
	_, hasLabelledBy := Attr(n, "aria-labelledby")
	_, hasTitle := Attr(n, "title")
	return landmark.ImplicitRole(n.Data, hasLabel || hasLabelledBy || hasTitle, scoped(n))
}

// scoped reports whether n sits inside a sectioning element.
func scoped(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && landmark.IsSectioning(p.Data) {
			return true
		}
	}
	return false
}

// Bind mounts a binding for every discovered landmark. Attribute changes
// made by the bindings, such as the tabindex override while a landmark has
// focus, are written back to the nodes.
func (d *Document) Bind(reg *landmark.Registry) []*landmark.Binding {
	found := d.Discover()
	bindings := make([]*landmark.Binding, 0, len(found))
	for _, f := range found {
		n := f.Node
		b := landmark.Bind(reg, n, f.Props).OnChange(func(attrs landmark.Attributes) {
			ApplyAttributes(n, attrs)
		})
		b.Mount()
		bindings = append(bindings, b)
	}
	return bindings
}

// ApplyAttributes writes landmark attributes onto n. The tabindex
// attribute is removed when the attributes carry no override.
func ApplyAttributes(n *html.Node, attrs landmark.Attributes) {
	RemoveAttr(n, "tabindex")
	for _, pair := range attrs.Pairs() {
		SetAttr(n, pair[0], pair[1])
	}
}

// Describe returns a short human-readable name for a node, such as
// `nav#primary "Primary"`.
func Describe(el landmark.Element) string {
	n := node(el)
	if n == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(n.Data)
	if id, ok := Attr(n, "id"); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if label, ok := Attr(n, "aria-label"); ok && label != "" {
		b.WriteString(" \"")
		b.WriteString(label)
		b.WriteString("\"")
	}
	return b.String()
}
