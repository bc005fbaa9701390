package landmark

import (
	"log/slog"
	"strings"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger diagnostics and debug output go to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLocale selects the language of diagnostic messages, in preference
// order (BCP 47 tags such as "fr" or "en-GB").
func WithLocale(locales ...string) Option {
	return func(r *Registry) {
		for _, l := range locales {
			if l = strings.TrimSpace(l); l != "" {
				r.locales = append(r.locales, l)
			}
		}
	}
}

// WithNavigationKey changes the key that moves between landmarks.
func WithNavigationKey(key string) Option {
	return func(r *Registry) {
		if key != "" {
			r.navigationKey = key
		}
	}
}

// WithHistorySize sets how many dispatched commands are kept.
func WithHistorySize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.historySize = n
		}
	}
}

// WithDiagnosticHandler registers fn to receive every diagnostic as it is
// reported.
func WithDiagnosticHandler(fn func(Diagnostic)) Option {
	return func(r *Registry) {
		r.onDiagnostic = fn
	}
}
