// Package logging assembles the structured slog loggers used across podium.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that cannot
// fail. Console lines carry an optional component prefix followed by k=v
// attributes; JSON output uses compact ts/level/msg keys.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits log data with the same shape.
package logging
