package console_test

import (
	"strings"
	"testing"

	"sbdstream/internal/console"
	"sbdstream/internal/schedule"
	"sbdstream/internal/testsupport"
)

func TestRenderScheduleMarksCurrentAndMissing(t *testing.T) {
	events := []*schedule.Event{
		testsupport.MustEvent(t, "2026-04-01T18:30:00", "open.mp4", "Opening", "The opening"),
		testsupport.MustEvent(t, "", "gone.mp4", "Backup", "Standby filler"),
	}
	exists := func(path string) bool { return path == "open.mp4" }

	out := console.RenderSchedule(events, 0, exists, false)

	if !strings.Contains(out, "1*") {
		t.Fatalf("current row not marked:\n%s", out)
	}
	if !strings.Contains(out, "gone.mp4 !") {
		t.Fatalf("missing video not marked:\n%s", out)
	}
	if !strings.Contains(out, "2026-04-01") || !strings.Contains(out, "18:30:00") {
		t.Fatalf("scheduled time not rendered:\n%s", out)
	}
	if !strings.Contains(out, "unscheduled") {
		t.Fatalf("unscheduled row not labeled:\n%s", out)
	}
}

func TestRenderScheduleEmpty(t *testing.T) {
	out := console.RenderSchedule(nil, -1, nil, false)
	if !strings.Contains(out, "DATE") && !strings.Contains(out, "Date") {
		t.Fatalf("header missing from empty table:\n%s", out)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tc := range cases {
		if got := console.FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
