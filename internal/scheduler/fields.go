package scheduler

import "strings"

// Field identifies the single event field an UpdateField call mutates.
type Field string

const (
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	FieldVideo       Field = "video"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

var fieldSet = map[Field]struct{}{
	FieldDate:        {},
	FieldTime:        {},
	FieldVideo:       {},
	FieldTitle:       {},
	FieldDescription: {},
}

// AllFields returns the editable fields in schedule column order.
func AllFields() []Field {
	return []Field{FieldDate, FieldTime, FieldVideo, FieldTitle, FieldDescription}
}

// ParseField converts a string into a known Field.
func ParseField(value string) (Field, bool) {
	normalized := Field(strings.ToLower(strings.TrimSpace(value)))
	_, ok := fieldSet[normalized]
	return normalized, ok
}

// UnscheduledMarker is the edit value that clears an event's time, alongside
// the empty string.
const UnscheduledMarker = "unscheduled"

func clearsTime(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, UnscheduledMarker)
}
