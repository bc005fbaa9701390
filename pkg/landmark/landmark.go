package landmark

import (
	"strings"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
)

// Role and Direction are re-exported for callers that only import this package.
type (
	Role      = constants.Role
	Direction = constants.Direction
)

const (
	RoleMain          = constants.RoleMain
	RoleRegion        = constants.RoleRegion
	RoleSearch        = constants.RoleSearch
	RoleNavigation    = constants.RoleNavigation
	RoleForm          = constants.RoleForm
	RoleBanner        = constants.RoleBanner
	RoleContentInfo   = constants.RoleContentInfo
	RoleComplementary = constants.RoleComplementary

	Forward  = constants.DirectionForward
	Backward = constants.DirectionBackward
)

// Landmark is one registered region of the document.
type Landmark struct {
	Element     Element         // Root element of the region
	Role        Role            // ARIA landmark role
	Label       string          // Distinguishes landmarks sharing a role
	LastFocused Element         // Most recently focused descendant, nil if none yet
	Focus       func(Direction) // Gives the landmark focus, entering from Direction
	Blur        func()          // Tells the landmark it is no longer active
}

// Field overwrites one attribute of a registered landmark.
type Field func(*Landmark)

// WithRole sets the landmark role.
func WithRole(role Role) Field {
	return func(l *Landmark) { l.Role = role }
}

// WithLabel sets the landmark label.
func WithLabel(label string) Field {
	return func(l *Landmark) { l.Label = label }
}

// WithLastFocused sets the remembered descendant.
func WithLastFocused(el Element) Field {
	return func(l *Landmark) { l.LastFocused = el }
}

// WithFocus replaces the focus callback.
func WithFocus(fn func(Direction)) Field {
	return func(l *Landmark) { l.Focus = fn }
}

// WithBlur replaces the blur callback.
func WithBlur(fn func()) Field {
	return func(l *Landmark) { l.Blur = fn }
}

// ParseRole converts an ARIA role token into a Role.
func ParseRole(token string) (Role, error) {
	return constants.ParseRole(token)
}

// ImplicitRole returns the landmark role an HTML element carries without
// an explicit role attribute. named reports whether the element has an
// accessible name; scoped reports whether it sits inside a sectioning
// element (article, aside, main, nav or section), which strips header and
// footer of their landmark semantics.
func ImplicitRole(tag string, named, scoped bool) (Role, bool) {
	switch tag {
	case "main":
		return RoleMain, true
	case "nav":
		return RoleNavigation, true
	case "aside":
		return RoleComplementary, true
	case "search":
		return RoleSearch, true
	case "form":
		return RoleForm, named
	case "section":
		return RoleRegion, named
	case "header":
		return RoleBanner, !scoped
	case "footer":
		return RoleContentInfo, !scoped
	}
	return 0, false
}

// ExplicitRole returns the first landmark role in a space-separated role
// attribute value. Later tokens are fallbacks for the earlier ones.
func ExplicitRole(attr string) (Role, bool) {
	for _, token := range strings.Fields(attr) {
		if role, err := ParseRole(token); err == nil {
			return role, true
		}
	}
	return 0, false
}

// IsSectioning returns true for tags that scope header and footer.
func IsSectioning(tag string) bool {
	switch tag {
	case "article", "aside", "main", "nav", "section":
		return true
	}
	return false
}
