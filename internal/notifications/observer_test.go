package notifications_test

import (
	"context"
	"testing"

	"sbdstream/internal/logging"
	"sbdstream/internal/notifications"
	"sbdstream/internal/scheduler"
)

type fakeService struct {
	started    []string
	noMore     []string
	loaded     []int
	testPushes int
}

func (f *fakeService) NotifyScheduleLoaded(_ context.Context, count int) error {
	f.loaded = append(f.loaded, count)
	return nil
}

func (f *fakeService) NotifyEventStarted(_ context.Context, title string) error {
	f.started = append(f.started, title)
	return nil
}

func (f *fakeService) NotifyNoMoreEvents(_ context.Context, currentTitle string) error {
	f.noMore = append(f.noMore, currentTitle)
	return nil
}

func (f *fakeService) NotifyError(context.Context, error, string) error { return nil }

func (f *fakeService) TestNotification(context.Context) error {
	f.testPushes++
	return nil
}

func TestObserverPushesEventStarts(t *testing.T) {
	svc := &fakeService{}
	obs := notifications.Observer(svc, logging.NewNop())

	obs.EventStarted("open.mp4", "Opening", "the opening")

	if len(svc.started) != 1 || svc.started[0] != "Opening" {
		t.Fatalf("started pushes = %v", svc.started)
	}
}

func TestObserverPushesOnlyTerminalCountdown(t *testing.T) {
	svc := &fakeService{}
	obs := notifications.Observer(svc, logging.NewNop())

	// Ordinary countdown restarts stay local.
	obs.CountdownStarted("Next Show", 120, "Opening", "the opening")
	if len(svc.noMore) != 0 {
		t.Fatalf("ordinary countdown must not push, got %v", svc.noMore)
	}

	obs.CountdownStarted(scheduler.NoMoreEventsTitle, 0, "Closing", "the end")
	if len(svc.noMore) != 1 || svc.noMore[0] != "Closing" {
		t.Fatalf("no-more-events push = %v", svc.noMore)
	}

	// Per-second ticks and table updates never push.
	obs.CountdownTick(5)
	obs.ScheduleChanged(nil)
	obs.CurrentChanged(0)
	if len(svc.started) != 0 || len(svc.noMore) != 1 {
		t.Fatalf("unexpected pushes: %+v", svc)
	}
}
