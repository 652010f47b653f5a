package schedule

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UntitledEvent is the title assigned when neither the operator nor the video
// file name yields one.
const UntitledEvent = "Untitled Event"

// Event is a single schedule item. The ID is assigned at construction and is
// stable across re-sorts; it is how the scheduler re-locates an event after
// the master sequence is rebuilt.
type Event struct {
	ID          string
	Occurrence  Occurrence
	VideoPath   string
	Title       string
	Description string
}

// NewEvent builds an event from an optional time string plus video path,
// title, and description. A non-empty time string that fails to parse leaves
// the event unscheduled and returns the parse error as a non-fatal warning;
// the event itself is always valid.
func NewEvent(timeValue, videoPath, title, description string) (*Event, error) {
	occ, warn := ParseOccurrence(timeValue)
	return &Event{
		ID:          uuid.NewString(),
		Occurrence:  occ,
		VideoPath:   videoPath,
		Title:       title,
		Description: description,
	}, warn
}

// SetTime re-parses the time field in place. The fallback rule matches
// NewEvent: parse failure clears the time and returns the error as a warning.
func (e *Event) SetTime(value string) error {
	occ, warn := ParseOccurrence(value)
	e.Occurrence = occ
	return warn
}

// SecondsUntil returns the signed seconds from ref to the event time.
// ok is false for unscheduled events.
func (e *Event) SecondsUntil(ref time.Time) (seconds float64, ok bool) {
	return e.Occurrence.SecondsUntil(ref)
}

// DeriveTitle produces a display title from a video path: the base file name
// with separators collapsed to spaces and title casing applied. Empty or
// unproductive paths yield UntitledEvent.
func DeriveTitle(videoPath string) string {
	if strings.TrimSpace(videoPath) == "" {
		return UntitledEvent
	}
	base := filepath.Base(videoPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return UntitledEvent
	}
	return cases.Title(language.Und).String(title)
}
