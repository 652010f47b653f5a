package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout and ClockLayout are the column formats used in the schedule CSV.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// timeLayouts are the accepted input formats for event times, tried in order.
// Offsets in RFC 3339 input are dropped; all stored times are naive local.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Occurrence is when an event happens: either a concrete local time or
// unscheduled. The zero value is unscheduled.
type Occurrence struct {
	at        time.Time
	scheduled bool
}

// ScheduleAt returns an occurrence at the given time, normalized to a naive
// local timestamp (any offset information is discarded).
func ScheduleAt(t time.Time) Occurrence {
	return Occurrence{at: stripOffset(t), scheduled: true}
}

// Unscheduled returns the occurrence for an event with no time.
func Unscheduled() Occurrence {
	return Occurrence{}
}

// At returns the occurrence time. ok is false for unscheduled events.
func (o Occurrence) At() (t time.Time, ok bool) {
	return o.at, o.scheduled
}

// IsScheduled reports whether the occurrence carries a time.
func (o Occurrence) IsScheduled() bool {
	return o.scheduled
}

// SecondsUntil returns the signed seconds from ref to the occurrence time.
// Positive means the occurrence is in the future. ok is false for
// unscheduled events.
func (o Occurrence) SecondsUntil(ref time.Time) (seconds float64, ok bool) {
	if !o.scheduled {
		return 0, false
	}
	return o.at.Sub(stripOffset(ref)).Seconds(), true
}

// Before reports whether o occurs earlier than other. Unscheduled occurrences
// sort after every scheduled one and are equal among themselves.
func (o Occurrence) Before(other Occurrence) bool {
	switch {
	case o.scheduled && other.scheduled:
		return o.at.Before(other.at)
	case o.scheduled:
		return true
	default:
		return false
	}
}

// Equal reports whether two occurrences are the same instant, or both
// unscheduled.
func (o Occurrence) Equal(other Occurrence) bool {
	if o.scheduled != other.scheduled {
		return false
	}
	return !o.scheduled || o.at.Equal(other.at)
}

// String renders the occurrence as an ISO timestamp, or "unscheduled".
func (o Occurrence) String() string {
	if !o.scheduled {
		return "unscheduled"
	}
	return o.at.Format(timeLayouts[0])
}

// ParseOccurrence parses a permissive date-time string into an occurrence.
// An empty or all-blank string parses as unscheduled. A non-empty string that
// matches none of the accepted layouts returns an unscheduled occurrence
// alongside the parse error so callers can fall back instead of failing.
func ParseOccurrence(value string) (Occurrence, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Unscheduled(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return ScheduleAt(t), nil
		}
	}
	return Unscheduled(), fmt.Errorf("parse event time %q: no accepted layout matched", trimmed)
}

// stripOffset rebuilds t from its wall-clock components in local time,
// discarding any timezone offset carried by the input.
func stripOffset(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, 0, time.Local)
}
