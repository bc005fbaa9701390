// Package constants defines shared constants, types, and configuration values
// used throughout the landmark navigation packages.
package constants

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Environment variables that override configuration at startup.
const (
	LogLevelEnvVar = "LANDMARK_LOG_LEVEL"
	LocaleEnvVar   = "LANDMARK_LOCALE"
	ConfigEnvVar   = "LANDMARK_CONFIG"
)

// NavigationEventName is the type of the bubbling, cancelable event fired on
// the focused element when navigation is about to wrap around.
const NavigationEventName = "landmark-navigation"

// DefaultNavigationKey is the key that moves between landmarks.
const DefaultNavigationKey = "F6"

// ErrUnknownRole is returned by ParseRole for tokens outside the landmark set.
var ErrUnknownRole = errors.New("unknown landmark role")

// LogLevelFromEnv returns the log level override, if any.
func LogLevelFromEnv() string {
	return os.Getenv(LogLevelEnvVar)
}

// Role is an ARIA landmark role.
type Role int

const (
	RoleMain Role = iota
	RoleRegion
	RoleSearch
	RoleNavigation
	RoleForm
	RoleBanner
	RoleContentInfo
	RoleComplementary
)

// Roles lists every landmark role in declaration order.
var Roles = []Role{
	RoleMain,
	RoleRegion,
	RoleSearch,
	RoleNavigation,
	RoleForm,
	RoleBanner,
	RoleContentInfo,
	RoleComplementary,
}

// String returns the ARIA token for the role.
func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleRegion:
		return "region"
	case RoleSearch:
		return "search"
	case RoleNavigation:
		return "navigation"
	case RoleForm:
		return "form"
	case RoleBanner:
		return "banner"
	case RoleContentInfo:
		return "contentinfo"
	case RoleComplementary:
		return "complementary"
	default:
		return "unknown"
	}
}

// ParseRole converts an ARIA role token into a Role. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseRole(token string) (Role, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, r := range Roles {
		if r.String() == t {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, token)
}

// Direction is the direction of sequential landmark navigation.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// DirectionFor returns backward when shift is held, forward otherwise.
func DirectionFor(shift bool) Direction {
	if shift {
		return DirectionBackward
	}
	return DirectionForward
}

// Step returns the index delta for the direction.
func (d Direction) Step() int {
	if d == DirectionBackward {
		return -1
	}
	return 1
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == DirectionBackward {
		return DirectionForward
	}
	return DirectionBackward
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return ""
	}
}

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
