package landmark

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/dispatch"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownRole indicates a role token outside the landmark set.
	ErrUnknownRole = constants.ErrUnknownRole

	// ErrNotRegistered indicates an element with no registered landmark.
	ErrNotRegistered = errors.New("landmark not registered")

	// ErrDetached indicates an element no longer attached to the document.
	// Command handlers report it so the dispatcher can skip the command.
	ErrDetached = fmt.Errorf("landmark: %w", dispatch.ErrStale)
)

// HostError represents a failure inside a host document adapter (a browser
// call failed, a document could not be parsed, and so on). The registry
// itself never returns these; adapters and tools do.
type HostError struct {
	Op  string // Operation that failed (e.g., "parse", "compare_position")
	Err error  // Underlying error
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("landmark: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("landmark: %s", e.Op)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new host error.
func NewHostError(op string, err error) *HostError {
	return &HostError{Op: op, Err: err}
}

// IsHostError checks if an error is a host error.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}

// IsDetached checks if an error reports a detached element.
func IsDetached(err error) bool {
	return errors.Is(err, dispatch.ErrStale)
}
