// Package logging builds the slog loggers used across the batch modes.
//
// Two output formats are supported: a console handler that prints one
// readable line per record with the component attribute folded into the
// prefix, and standard JSON for machine consumption. File output rotates
// through lumberjack so long-lived working directories do not accumulate
// unbounded logs.
package logging
