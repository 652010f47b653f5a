package schedule_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"sbdstream/internal/schedule"
)

func writeCSV(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestLoadEventsMissingFileYieldsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	events, err := schedule.LoadEvents(fs, "absent.csv")
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestLoadEventsParsesScheduledAndUnscheduled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCSV(t, fs, "schedule.csv",
		"Date,Time,Video,Title,Description\n"+
			"2026-04-01,18:30:00,open.mp4,Opening,The opening\n"+
			",,backup.mp4,Backup,Standby filler\n")

	events, err := schedule.LoadEvents(fs, "schedule.csv")
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	at, ok := events[0].Occurrence.At()
	if !ok {
		t.Fatal("first row should be scheduled")
	}
	want := time.Date(2026, 4, 1, 18, 30, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Fatalf("first row time = %v, want %v", at, want)
	}
	if events[1].Occurrence.IsScheduled() {
		t.Fatal("blank time row should be unscheduled")
	}
}

func TestLoadEventsBlankTimeIgnoresDate(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCSV(t, fs, "schedule.csv",
		"Date,Time,Video,Title,Description\n"+
			"2026-04-01,,open.mp4,Opening,Has a date but no time\n")

	events, err := schedule.LoadEvents(fs, "schedule.csv")
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if events[0].Occurrence.IsScheduled() {
		t.Fatal("a row without a Time is unscheduled regardless of Date")
	}
}

func TestLoadEventsTimeWithoutDateUsesToday(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCSV(t, fs, "schedule.csv",
		"Date,Time,Video,Title,Description\n"+
			",23:59:00,open.mp4,Opening,Time only\n")

	events, err := schedule.LoadEvents(fs, "schedule.csv")
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	at, ok := events[0].Occurrence.At()
	if !ok {
		t.Fatal("time-only row should be scheduled")
	}
	if got := at.Format(schedule.DateLayout); got != time.Now().Format(schedule.DateLayout) {
		t.Fatalf("time-only row date = %s, want today", got)
	}
}

func TestLoadEventsValidation(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"missing title", "2026-04-01,18:30:00,open.mp4,,desc"},
		{"missing description", "2026-04-01,18:30:00,open.mp4,Opening,"},
		{"bad date", "01/04/2026,18:30:00,open.mp4,Opening,desc"},
		{"bad time", "2026-04-01,late,open.mp4,Opening,desc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeCSV(t, fs, "schedule.csv", "Date,Time,Video,Title,Description\n"+tc.row+"\n")
			_, err := schedule.LoadEvents(fs, "schedule.csv")
			if !errors.Is(err, schedule.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if err != nil && !strings.Contains(err.Error(), "row 2") {
				t.Fatalf("error should name the row: %v", err)
			}
		})
	}
}

func TestLoadEventsReorderedColumns(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCSV(t, fs, "schedule.csv",
		"Title,Description,Video,Date,Time\n"+
			"Opening,The opening,open.mp4,2026-04-01,18:30:00\n")

	events, err := schedule.LoadEvents(fs, "schedule.csv")
	if err != nil {
		t.Fatalf("LoadEvents: %v", err)
	}
	if events[0].Title != "Opening" || events[0].VideoPath != "open.mp4" {
		t.Fatalf("column matching by header failed: %+v", events[0])
	}
	if !events[0].Occurrence.IsScheduled() {
		t.Fatal("reordered row should still be scheduled")
	}
}

func TestSaveEventsRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	scheduled, _ := schedule.NewEvent("2026-04-01T18:30:00", "open.mp4", "Opening", "The opening")
	unscheduled, _ := schedule.NewEvent("", "backup.mp4", "Backup", "Standby filler")

	if err := schedule.SaveEvents(fs, "out/schedule.csv", []*schedule.Event{scheduled, unscheduled}); err != nil {
		t.Fatalf("SaveEvents: %v", err)
	}

	events, err := schedule.LoadEvents(fs, "out/schedule.csv")
	if err != nil {
		t.Fatalf("LoadEvents after save: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("round trip lost events: got %d", len(events))
	}
	if !events[0].Occurrence.Equal(scheduled.Occurrence) {
		t.Fatalf("round trip time mismatch: %v vs %v", events[0].Occurrence, scheduled.Occurrence)
	}
	if events[1].Occurrence.IsScheduled() {
		t.Fatal("unscheduled event must stay unscheduled across a round trip")
	}
	if events[1].Title != "Backup" || events[1].Description != "Standby filler" {
		t.Fatalf("round trip metadata mismatch: %+v", events[1])
	}
}

func TestSaveEventsLeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	event, _ := schedule.NewEvent("", "a.mp4", "A", "desc")

	if err := schedule.SaveEvents(fs, "dir/schedule.csv", []*schedule.Event{event}); err != nil {
		t.Fatalf("SaveEvents: %v", err)
	}

	entries, err := afero.ReadDir(fs, "dir")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "schedule.csv" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only schedule.csv, got %v", names)
	}
}

func TestStoreLoadSave(t *testing.T) {
	store := schedule.NewStore(afero.NewMemMapFs(), "schedule.csv")

	event, _ := schedule.NewEvent("2026-04-01T18:30:00", "open.mp4", "Opening", "The opening")
	if err := store.Save([]*schedule.Event{event}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	exists, err := store.Exists()
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v; want true, nil", exists, err)
	}

	events, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Opening" {
		t.Fatalf("unexpected load result: %+v", events)
	}
}
