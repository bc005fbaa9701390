package landmark

import (
	"fmt"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/constants"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/internal"
)

// Severity re-exports constants.Severity.
type Severity = constants.Severity

const (
	SeverityWarning = constants.SeverityWarning
	SeverityError   = constants.SeverityError
)

// Code identifies the rule a diagnostic reports.
type Code string

const (
	CodeDuplicateMain  Code = "duplicate-main"
	CodeMissingLabel   Code = "missing-label"
	CodeDuplicateLabel Code = "duplicate-label"
)

// Diagnostic reports a broken landmark rule. Violations never stop the
// registry. Each one is recorded and logged, then passed to the handler.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Role     Role
	Label    string    // Duplicated label, for CodeDuplicateLabel
	Message  string    // Localized description
	Elements []Element // Offending landmark elements, in document order
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}

// Diagnostics returns a copy of every diagnostic reported so far.
func (r *Registry) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// ClearDiagnostics forgets previously reported diagnostics.
func (r *Registry) ClearDiagnostics() {
	r.diagnostics = r.diagnostics[:0]
}

func (r *Registry) report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)

	attrs := []any{"code", string(d.Code), "role", d.Role.String(), "elements", len(d.Elements)}
	if d.Label != "" {
		attrs = append(attrs, "label", d.Label)
	}
	if d.Severity == SeverityError {
		r.logger.Error(d.Message, attrs...)
	} else {
		r.logger.Warn(d.Message, attrs...)
	}

	if r.onDiagnostic != nil {
		r.onDiagnostic(d)
	}
}

func (r *Registry) checkMain() {
	mains := r.elementsWhere(func(l *Landmark) bool { return l.Role == RoleMain })
	if len(mains) <= 1 {
		return
	}
	r.report(Diagnostic{
		Severity: SeverityError,
		Code:     CodeDuplicateMain,
		Role:     RoleMain,
		Message:  r.messages.Render(internal.MessageDuplicateMain, nil),
		Elements: mains,
	})
}

// checkLabels validates that landmarks sharing role are labeled uniquely.
// A role with a single landmark needs no label.
func (r *Registry) checkLabels(role Role) {
	var withRole []*Landmark
	for _, l := range r.landmarks {
		if l.Role == role {
			withRole = append(withRole, l)
		}
	}
	if len(withRole) <= 1 {
		return
	}

	var unlabeled []Element
	for _, l := range withRole {
		if l.Label == "" {
			unlabeled = append(unlabeled, l.Element)
		}
	}
	if len(unlabeled) > 0 {
		r.report(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeMissingLabel,
			Role:     role,
			Message:  r.messages.Render(internal.MessageMissingLabel, map[string]any{"Role": role.String()}),
			Elements: unlabeled,
		})
		return
	}

	byLabel := make(map[string][]Element)
	var order []string
	for _, l := range withRole {
		if _, seen := byLabel[l.Label]; !seen {
			order = append(order, l.Label)
		}
		byLabel[l.Label] = append(byLabel[l.Label], l.Element)
	}
	for _, label := range order {
		els := byLabel[label]
		if len(els) < 2 {
			continue
		}
		r.report(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeDuplicateLabel,
			Role:     role,
			Label:    label,
			Message: r.messages.Render(internal.MessageDuplicateLabel, map[string]any{
				"Role":  role.String(),
				"Label": label,
			}),
			Elements: els,
		})
	}
}

func (r *Registry) elementsWhere(match func(*Landmark) bool) []Element {
	var out []Element
	for _, l := range r.landmarks {
		if match(l) {
			out = append(out, l.Element)
		}
	}
	return out
}
