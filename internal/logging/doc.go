// Package logging constructs the application slog logger.
//
// Degraded pipeline conditions (rejected mute commands, name-list failures,
// enumeration fallbacks) are warnings; per-stem outcomes are info; block
// level detail is debug.
package logging
