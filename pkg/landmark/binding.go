package landmark

import "strconv"

// Props are the landmark properties a UI component declares.
type Props struct {
	Role           Role
	AriaLabel      string          // Inline accessible label
	AriaLabelledBy string          // ID reference to a labelling element
	Focus          func(Direction) // Optional override of the default focus behaviour
}

// Label returns the label used to tell landmarks of the same role apart.
func (p Props) Label() string {
	if p.AriaLabel != "" {
		return p.AriaLabel
	}
	return p.AriaLabelledBy
}

// Attributes are the accessibility attributes a bound element exposes.
type Attributes struct {
	Role           string
	AriaLabel      string
	AriaLabelledBy string
	TabIndex       *int // Set to -1 while the landmark holds focus
}

// Pairs returns the attributes as name/value pairs in a stable order.
// Only one of aria-label and aria-labelledby is emitted, aria-label winning.
func (a Attributes) Pairs() [][2]string {
	pairs := [][2]string{{"role", a.Role}}
	if a.AriaLabel != "" {
		pairs = append(pairs, [2]string{"aria-label", a.AriaLabel})
	} else if a.AriaLabelledBy != "" {
		pairs = append(pairs, [2]string{"aria-labelledby", a.AriaLabelledBy})
	}
	if a.TabIndex != nil {
		pairs = append(pairs, [2]string{"tabindex", strconv.Itoa(*a.TabIndex)})
	}
	return pairs
}

// Binding connects one UI element to a Registry over the element's
// lifetime: Mount when it appears, SetProps on every re-render, Unmount
// when it goes away.
type Binding struct {
	registry *Registry
	element  Element
	props    Props
	mounted  bool
	focused  bool
	onChange func(Attributes)
}

// Bind prepares a binding for el. Nothing is registered until Mount.
func Bind(registry *Registry, el Element, props Props) *Binding {
	return &Binding{
		registry: registry,
		element:  el,
		props:    props,
	}
}

// OnChange registers fn to receive the element's attributes whenever they
// change, so the host can apply them.
func (b *Binding) OnChange(fn func(Attributes)) *Binding {
	b.onChange = fn
	return b
}

// Element returns the bound element.
func (b *Binding) Element() Element {
	return b.element
}

// Mount registers the landmark.
func (b *Binding) Mount() {
	if b.mounted {
		return
	}
	b.mounted = true
	b.registry.Add(Landmark{
		Element: b.element,
		Role:    b.props.Role,
		Label:   b.props.Label(),
		Focus:   b.focusFunc(),
		Blur:    b.blur,
	})
	b.notify()
}

// SetProps applies new props, updating the registry only for fields that
// changed.
func (b *Binding) SetProps(props Props) {
	old := b.props
	b.props = props
	if !b.mounted {
		return
	}

	var fields []Field
	if props.Role != old.Role {
		fields = append(fields, WithRole(props.Role))
	}
	if props.Label() != old.Label() {
		fields = append(fields, WithLabel(props.Label()))
	}
	// Closures cannot be compared; any override is re-registered.
	if props.Focus != nil || old.Focus != nil {
		fields = append(fields, WithFocus(b.focusFunc()))
	}
	if len(fields) > 0 {
		b.registry.Update(b.element, fields...)
	}

	if props.Role != old.Role || props.AriaLabel != old.AriaLabel || props.AriaLabelledBy != old.AriaLabelledBy {
		b.notify()
	}
}

// Unmount unregisters the landmark.
func (b *Binding) Unmount() {
	if !b.mounted {
		return
	}
	b.mounted = false
	b.focused = false
	b.registry.Remove(b.element)
}

// IsFocused returns true while the landmark holds focus through
// landmark navigation.
func (b *Binding) IsFocused() bool {
	return b.focused
}

// Attributes returns the attributes the element should currently expose.
func (b *Binding) Attributes() Attributes {
	attrs := Attributes{
		Role:           b.props.Role.String(),
		AriaLabel:      b.props.AriaLabel,
		AriaLabelledBy: b.props.AriaLabelledBy,
	}
	if b.focused {
		tabIndex := -1
		attrs.TabIndex = &tabIndex
	}
	return attrs
}

func (b *Binding) focusFunc() func(Direction) {
	if b.props.Focus != nil {
		return b.props.Focus
	}
	return b.defaultFocus
}

func (b *Binding) defaultFocus(Direction) {
	b.setFocused(true)
}

func (b *Binding) blur() {
	b.setFocused(false)
}

func (b *Binding) setFocused(focused bool) {
	if b.focused == focused {
		return
	}
	b.focused = focused
	b.notify()

	if focused {
		b.registry.doc.Focus(b.element)
	}
}

func (b *Binding) notify() {
	if b.onChange != nil {
		b.onChange(b.Attributes())
	}
}
