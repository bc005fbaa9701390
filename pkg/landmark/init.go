// Package landmark keeps a registry of the accessibility landmarks of a
// document (main, navigation, search and so on) in document order, and
// implements F6 navigation between them.
//
// The registry works against any host element tree through the Document
// interface. Hosts deliver key and focus events to the registry's listener,
// which is attached only while landmarks are registered. Decisions are made
// by pure handlers (OnKeyDown, OnFocusIn, OnFocusOut) returning commands
// that a dispatcher then executes.
//
// UI components integrate through Bind, which registers a landmark on
// Mount, keeps it current on SetProps and unregisters it on Unmount.
package landmark

import (
	"log/slog"

	"github.com/BrandonKowalski/landmarks/pkg/landmark/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first registry is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the shared structured logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level of the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close releases the log file, if any. Call before program exit.
func Close() {
	internal.CloseLogger()
}
