// SPDX-License-Identifier: GPL-3.0-or-later

package argcheck

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// Attach it to the logger with [*slog.Logger.With] so that every event
// emitted while validating the arguments of one invocation shares the
// same spanID.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
