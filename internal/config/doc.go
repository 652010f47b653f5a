// Package config loads and validates the sbdstream configuration file.
//
// Configuration is optional TOML: a missing file yields working defaults so
// the tool runs with nothing but a schedule CSV. Sections cover directories,
// scheduler timing, ntfy notifications, and log output. Path fields are
// tilde-expanded and absolutized during load; Validate runs on every load so
// a bad file fails before any window of partial startup.
package config
