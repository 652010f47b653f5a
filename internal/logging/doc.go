// Package logging assembles the structured slog loggers used across
// sbdstream.
//
// It owns the console and JSON handlers, level and output plumbing, shared
// attribute helpers, and the no-op logger used by tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so every
// component emits log lines with the same shape.
package logging
