package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sbdstream/internal/schedule"
)

// ScheduleHeader is the CSV header row shared by every fixture.
const ScheduleHeader = "Date,Time,Video,Title,Description"

// WriteSchedule writes a schedule CSV under a fresh temp directory and
// returns its path. Rows are joined under the standard header.
func WriteSchedule(t testing.TB, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schedule.csv")
	content := ScheduleHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schedule fixture: %v", err)
	}
	return path
}

// MustStore builds a file store over a freshly written schedule fixture.
func MustStore(t testing.TB, rows ...string) *schedule.Store {
	t.Helper()
	return schedule.NewFileStore(WriteSchedule(t, rows...))
}

// MustEvent constructs an event or fails the test on a parse warning.
func MustEvent(t testing.TB, timeValue, videoPath, title, description string) *schedule.Event {
	t.Helper()

	event, err := schedule.NewEvent(timeValue, videoPath, title, description)
	if err != nil {
		t.Fatalf("schedule.NewEvent(%q): %v", timeValue, err)
	}
	return event
}
