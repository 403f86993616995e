// Package logging assembles the structured slog loggers used across
// frameshuffle.
//
// It owns level and format parsing, the console/JSON handler switch, and
// small attr helper aliases so the rest of the code does not import
// log/slog directly for field construction. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
