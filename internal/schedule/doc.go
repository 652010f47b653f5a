// Package schedule owns the event data model and its CSV persistence.
//
// An Event couples an optional occurrence time with a video path, title, and
// description. The CSV codec reads and writes the flat schedule file that is
// the single source of truth for the application; it validates rows on load
// and rewrites the whole file on save. The Store wraps a filesystem and path
// so the scheduler persists through one handle and tests can run against an
// in-memory filesystem.
//
// The codec never sorts. Ordering and the scheduled/unscheduled partition are
// scheduler concerns; this package only guarantees that what it loads is what
// was saved, row for row.
package schedule
