package console_test

import (
	"strings"
	"testing"

	"sbdstream/internal/console"
	"sbdstream/internal/logging"
	"sbdstream/internal/schedule"
	"sbdstream/internal/testsupport"
)

func newDisplay(t *testing.T) (*console.Display, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	d := console.NewDisplay(&out, logging.NewNop(),
		console.WithPlainStyle(),
		console.WithVideoCheck(func(string) bool { return true }),
	)
	return d, &out
}

func TestDisplayEventStarted(t *testing.T) {
	d, out := newDisplay(t)

	d.EventStarted("open.mp4", "Opening", "The opening")

	got := out.String()
	if !strings.Contains(got, "NOW PLAYING: Opening") {
		t.Fatalf("output = %q", got)
	}
	if !strings.Contains(got, "open.mp4") {
		t.Fatalf("video path missing: %q", got)
	}
}

func TestDisplayEventStartedMissingVideo(t *testing.T) {
	var out strings.Builder
	d := console.NewDisplay(&out, logging.NewNop(),
		console.WithPlainStyle(),
		console.WithVideoCheck(func(string) bool { return false }),
	)

	d.EventStarted("gone.mp4", "Opening", "")
	if !strings.Contains(out.String(), "missing") {
		t.Fatalf("missing-video advisory absent: %q", out.String())
	}
}

func TestDisplayCountdownStarted(t *testing.T) {
	d, out := newDisplay(t)

	d.CountdownStarted("Next Show", 125, "Opening", "The opening")

	got := out.String()
	if !strings.Contains(got, "Next: Next Show in 2:05") {
		t.Fatalf("output = %q", got)
	}
}

func TestDisplayCurrentChangedDedupes(t *testing.T) {
	d, out := newDisplay(t)

	events := []*schedule.Event{
		testsupport.MustEvent(t, "", "a.mp4", "A", "first"),
	}
	d.ScheduleChanged(events)
	d.CurrentChanged(0)
	before := out.String()
	d.CurrentChanged(0)

	if out.String() != before {
		t.Fatal("repeated index must not reprint")
	}
	if !strings.Contains(before, "current event: #1 A") {
		t.Fatalf("output = %q", before)
	}
}

func TestDisplayCurrentChangedNone(t *testing.T) {
	d, out := newDisplay(t)

	d.CurrentChanged(5)
	if !strings.Contains(out.String(), "current event: none") {
		t.Fatalf("output = %q", out.String())
	}
}
