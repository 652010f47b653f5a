package scheduler

import (
	"fmt"
	"time"

	"sbdstream/internal/logging"
)

// Load reads the schedule file, rebuilds the sequence, and resets the current
// index and active event. The error is returned for the caller to treat as
// fatal at startup; a corrupt schedule must not start with partial data.
func (s *Scheduler) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load schedule %s: %w", s.store.Path(), err)
	}

	s.partition(events)
	s.currentIndex = -1
	s.activeID = ""
	s.emitListUpdate()

	s.logger.Info("schedule loaded",
		logging.String("path", s.store.Path()),
		logging.Int("events", len(s.events)),
		logging.Int("scheduled", len(s.scheduled)),
	)
	return nil
}

// Start establishes the initial state: the latest past scheduled event (if
// any) becomes current and active, and the countdown toward the next event
// begins. The runner starts calling Tick afterwards.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.started = true
	s.lastCheck = now

	if len(s.events) == 0 {
		s.logger.Info("no events loaded")
		s.notifyCountdownStarted(NoEventsTitle, 0, AppTitle, NoEventsPrompt)
		return
	}

	if latest := s.latestPastScheduled(now); latest != nil {
		s.currentIndex = s.indexOfID(latest.ID)
		s.activeID = latest.ID
		s.logger.Info("starting after event", logging.String("title", latest.Title))
	} else {
		s.currentIndex = -1
		s.activeID = ""
		s.logger.Info("no past scheduled events")
	}
	s.notifyCurrentChanged()

	s.refreshCountdown(now)
}

// Stop halts state transitions until the next Start. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
	s.countdownActive = false
}

// Tick advances the state machine to now. One tick source drives the
// deferred-notification flush, the schedule check, and the countdown, in that
// order, so an arriving event always fires through the schedule check before
// the countdown could observe it at zero. The flush runs even while stopped;
// edits made outside a session still reach observers on the next tick.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingListNotify {
		s.pendingListNotify = false
		s.emitListUpdate()
	}

	if !s.started {
		return
	}

	s.checkSchedule(now)
	if s.countdownActive {
		s.tickCountdown(now)
	}
	s.lastCheck = now
}

// checkSchedule fires the latest scheduled event whose time arrived since the
// previous tick, unless it is already the active event. This is how scheduled
// events start without operator action.
func (s *Scheduler) checkSchedule(now time.Time) {
	var latest *int
	for i, event := range s.scheduled {
		at, _ := event.Occurrence.At()
		if at.After(now) {
			break
		}
		if at.After(s.lastCheck) {
			idx := i
			latest = &idx
		}
	}
	if latest == nil {
		return
	}
	event := s.scheduled[*latest]
	if event.ID == s.activeID {
		return
	}

	s.countdownActive = false
	s.currentIndex = s.indexOfID(event.ID)
	s.activeID = event.ID

	s.logger.Info("scheduled event starting", logging.String("title", event.Title))
	s.notifyEventStarted(event)
	s.notifyCurrentChanged()
}

// tickCountdown recomputes remaining seconds from wall-clock deltas, never a
// decrementing counter, so a stalled ticker cannot drift the display.
func (s *Scheduler) tickCountdown(now time.Time) {
	next := s.nextEvent(now)
	if next == nil {
		s.countdownActive = false
		return
	}
	seconds, _ := next.SecondsUntil(now)
	if remaining := int(seconds); remaining > 0 {
		s.notifyCountdownTick(remaining)
		return
	}
	// Arrived; the schedule check performs the actual transition.
	s.countdownActive = false
}

// refreshCountdown recomputes the next scheduled event and announces the
// countdown toward it, carrying the current event's title and description as
// display context. Called on start, video finish, and every mutation that can
// change the timeline.
func (s *Scheduler) refreshCountdown(now time.Time) {
	currentTitle, currentDescription := s.currentContext()

	next := s.nextEvent(now)
	if next == nil {
		s.logger.Info("no more scheduled events")
		s.countdownActive = false
		s.notifyCountdownStarted(NoMoreEventsTitle, 0, currentTitle, currentDescription)
		return
	}

	seconds, _ := next.SecondsUntil(now)
	remaining := int(seconds)
	s.logger.Info("next scheduled event",
		logging.String("title", next.Title),
		logging.Int("seconds", remaining),
	)
	s.notifyCountdownStarted(next.Title, remaining, currentTitle, currentDescription)
	s.countdownActive = remaining > 0
}

// HandleVideoFinished transitions from playing back to counting down. The
// active event stays referenced so displays keep its title and description.
func (s *Scheduler) HandleVideoFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if active := s.activeEvent(); active != nil {
		s.logger.Info("video finished", logging.String("title", active.Title))
	} else {
		s.logger.Info("video finished with no active event")
	}
	s.refreshCountdown(s.now())
}
