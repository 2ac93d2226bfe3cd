// Package logging wraps golang.org/x/exp/slog behind the verbosity scale
// the reference TAP-B solver uses: NoNotifications, LowNotifications,
// MediumNotifications, FullNotifications, and FullDebug, from quietest to
// most verbose. A message tagged at a given verbosity is emitted only if
// the logger's configured verbosity is at least that high, mirroring the
// original's displayMessage(minVerbosity, ...) gate.
package logging
