package chromium

import (
	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

const (
	candidateSelector  = "main,nav,aside,search,form,section,header,footer,[role]"
	sectioningSelector = "article,aside,main,nav,section"
)

// Found is a landmark element discovered in the page.
type Found struct {
	Handle Handle
	Props  landmark.Props
}

type candidate struct {
	Handle     Handle `json:"handle"`
	Tag        string `json:"tag"`
	Role       string `json:"role"`
	HasRole    bool   `json:"hasRole"`
	Label      string `json:"label"`
	LabelledBy string `json:"labelledBy"`
	Named      bool   `json:"named"`
	Scoped     bool   `json:"scoped"`
}

func (c candidate) role() (landmark.Role, bool) {
	if c.HasRole {
		return landmark.ExplicitRole(c.Role)
	}
	return landmark.ImplicitRole(c.Tag, c.Named, c.Scoped)
}

// Discover returns every landmark element of the page in document order,
// using the same role rules as the HTML host.
func (d *Document) Discover() ([]Found, error) {
	res, err := d.eval("discover", jsDiscover, candidateSelector, sectioningSelector)
	if err != nil {
		return nil, err
	}

	var candidates []candidate
	if err := decode(res, &candidates); err != nil {
		return nil, landmark.NewHostError("discover", err)
	}

	var found []Found
	for _, c := range candidates {
		role, ok := c.role()
		if !ok {
			continue
		}
		found = append(found, Found{
			Handle: c.Handle,
			Props: landmark.Props{
				Role:           role,
				AriaLabel:      c.Label,
				AriaLabelledBy: c.LabelledBy,
			},
		})
	}
	return found, nil
}

// Bind mounts a binding for every discovered landmark, tracks reg and
// writes attribute changes back to the page.
func (d *Document) Bind(reg *landmark.Registry) ([]*landmark.Binding, error) {
	d.Track(reg)
	found, err := d.Discover()
	if err != nil {
		return nil, err
	}

	bindings := make([]*landmark.Binding, 0, len(found))
	for _, f := range found {
		h := f.Handle
		b := landmark.Bind(reg, h, f.Props).OnChange(func(attrs landmark.Attributes) {
			if err := d.ApplyAttributes(h, attrs); err != nil {
				d.logFailure(err, "element", h)
			}
		})
		b.Mount()
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// ApplyAttributes writes landmark attributes onto the element. The
// tabindex attribute is removed when the attributes carry no override.
func (d *Document) ApplyAttributes(h Handle, attrs landmark.Attributes) error {
	_, err := d.eval("apply_attributes", jsApply, h, attrs.Pairs())
	return err
}
