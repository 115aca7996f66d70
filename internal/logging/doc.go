// Package logging constructs the slog loggers used across scribe.
//
// Handlers are selected by config: "console" for human-readable output,
// "json" for machine-readable logs. When a log directory is configured,
// output fans out to both stdout and a service log file.
package logging
