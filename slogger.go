//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/x/netcore/dialer.go
//

package argcheck

// SLogger abstracts the [*slog.Logger] behavior.
//
// This package uses two log levels:
//   - Info for validation spans (validateStart, validateDone) and for
//     network lifecycle events emitted by network validators
//   - Debug for per-element decisions and per-I/O events
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns an [SLogger] that drops every event.
//
// Validators built with it stay silent; the CLI passes a [*slog.Logger]
// instead when logging is enabled.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements [SLogger].
func (discardSLogger) Debug(msg string, args ...any) {
	// nothing
}

// Info implements [SLogger].
func (discardSLogger) Info(msg string, args ...any) {
	// nothing
}
