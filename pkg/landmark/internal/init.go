// Package internal holds the shared logger, the localized diagnostic
// messages and the cursor used by landmark navigation.
// Types and functions in this package are not part of the public API.
package internal
