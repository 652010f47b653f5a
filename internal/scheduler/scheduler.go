package scheduler

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"sbdstream/internal/logging"
	"sbdstream/internal/schedule"
)

// Display strings emitted through countdown notifications when no event is
// active or none remain.
const (
	AppTitle          = "SBDStream"
	NoActiveEvent     = "No active event"
	NoEventsTitle     = "No events"
	NoMoreEventsTitle = "No more events"
	NoEventsPrompt    = "Load a CSV file."
)

// Scheduler owns the event sequence and the countdown/playing state machine.
// All exported methods serialize on one mutex; observer callbacks run inside
// that serialization, which is the Go rendition of the original cooperative
// single-threaded design.
type Scheduler struct {
	mu     sync.Mutex
	store  *schedule.Store
	logger *slog.Logger
	now    func() time.Time

	events      []*schedule.Event
	scheduled   []*schedule.Event
	unscheduled []*schedule.Event

	currentIndex    int
	activeID        string
	countdownActive bool
	started         bool
	lastCheck       time.Time

	// pendingListNotify defers the full-list/current-index fan-out from an
	// UpdateField call to the next tick, keeping a UI edit commit and the
	// resulting redraw out of the same call stack.
	pendingListNotify bool

	observers []Observer
}

// Option configures optional Scheduler behavior.
type Option func(*Scheduler)

// WithClock overrides the wall-clock source used by mutation handlers.
// Tick always receives its reference time explicitly.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a scheduler persisting through store.
func New(store *schedule.Store, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:        store,
		logger:       logging.NewComponentLogger(logger, "scheduler"),
		now:          time.Now,
		currentIndex: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddObserver registers an observer for subsequent notifications.
func (s *Scheduler) AddObserver(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Events returns a copy of the ordered event sequence.
func (s *Scheduler) Events() []*schedule.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*schedule.Event, len(s.events))
	copy(out, s.events)
	return out
}

// CurrentIndex returns the current event index, or -1 when none.
func (s *Scheduler) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex
}

// CountdownActive reports whether the countdown toward the next scheduled
// event is ticking.
func (s *Scheduler) CountdownActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdownActive
}

// rebuild re-sorts the scheduled partition and reassembles the master
// sequence: scheduled events ascending by time, then unscheduled events in
// insertion order.
func (s *Scheduler) rebuild() {
	sort.SliceStable(s.scheduled, func(i, j int) bool {
		return s.scheduled[i].Occurrence.Before(s.scheduled[j].Occurrence)
	})
	s.events = make([]*schedule.Event, 0, len(s.scheduled)+len(s.unscheduled))
	s.events = append(s.events, s.scheduled...)
	s.events = append(s.events, s.unscheduled...)
}

// partition rebuilds both partitions from an externally loaded sequence.
func (s *Scheduler) partition(events []*schedule.Event) {
	s.scheduled = s.scheduled[:0]
	s.unscheduled = s.unscheduled[:0]
	for _, event := range events {
		if event.Occurrence.IsScheduled() {
			s.scheduled = append(s.scheduled, event)
		} else {
			s.unscheduled = append(s.unscheduled, event)
		}
	}
	s.rebuild()
}

func (s *Scheduler) indexOfID(id string) int {
	if id == "" {
		return -1
	}
	for i, event := range s.events {
		if event.ID == id {
			return i
		}
	}
	return -1
}

func (s *Scheduler) activeEvent() *schedule.Event {
	if idx := s.indexOfID(s.activeID); idx >= 0 {
		return s.events[idx]
	}
	return nil
}

// currentContext returns the title and description shown while no video is
// playing: the most recently active event, or the application defaults.
func (s *Scheduler) currentContext() (title, description string) {
	if active := s.activeEvent(); active != nil {
		return active.Title, active.Description
	}
	return AppTitle, NoActiveEvent
}

// recalculateCurrentIndex re-locates the active event by ID after the
// sequence was rebuilt; a vanished active clears the reference. Without an
// active event it falls back to the latest past scheduled event for display
// ordering only, never promoting it to active.
func (s *Scheduler) recalculateCurrentIndex(now time.Time) {
	if s.activeID != "" {
		if idx := s.indexOfID(s.activeID); idx >= 0 {
			s.currentIndex = idx
			return
		}
		s.logger.Warn("active event missing after rebuild",
			logging.String("active_id", s.activeID),
			logging.String(logging.FieldEventType, "active_event_lost"),
		)
		s.activeID = ""
	}
	s.currentIndex = -1

	if latest := s.latestPastScheduled(now); latest != nil {
		s.currentIndex = s.indexOfID(latest.ID)
	}
}

// latestPastScheduled returns the last scheduled event with time <= now.
func (s *Scheduler) latestPastScheduled(now time.Time) *schedule.Event {
	var latest *schedule.Event
	for _, event := range s.scheduled {
		at, _ := event.Occurrence.At()
		if at.After(now) {
			break
		}
		latest = event
	}
	return latest
}

// nextEvent finds the event with the smallest strictly positive seconds until
// now, stable on sequence order. Returns nil when no scheduled event remains
// in the future.
func (s *Scheduler) nextEvent(now time.Time) *schedule.Event {
	var next *schedule.Event
	minSeconds := 0.0
	for _, event := range s.events {
		seconds, ok := event.SecondsUntil(now)
		if !ok || seconds <= 0 {
			continue
		}
		if next == nil || seconds < minSeconds {
			next = event
			minSeconds = seconds
		}
	}
	return next
}

// persist rewrites the schedule file. Save failures are reported and the
// in-memory state stays authoritative; the next mutation retries.
func (s *Scheduler) persist() {
	if err := s.store.Save(s.events); err != nil {
		s.logger.Warn("schedule save failed; in-memory state retained",
			logging.Error(err),
			logging.String("path", s.store.Path()),
			logging.String(logging.FieldEventType, "schedule_save_failed"),
			logging.String(logging.FieldErrorHint, "check schedule file permissions"),
		)
		return
	}
	s.logger.Debug("schedule saved", logging.String("path", s.store.Path()), logging.Int("events", len(s.events)))
}

func (s *Scheduler) notifyEventStarted(event *schedule.Event) {
	for _, o := range s.observers {
		o.EventStarted(event.VideoPath, event.Title, event.Description)
	}
}

func (s *Scheduler) notifyCountdownStarted(nextTitle string, seconds int, currentTitle, currentDescription string) {
	for _, o := range s.observers {
		o.CountdownStarted(nextTitle, seconds, currentTitle, currentDescription)
	}
}

func (s *Scheduler) notifyCountdownTick(seconds int) {
	for _, o := range s.observers {
		o.CountdownTick(seconds)
	}
}

func (s *Scheduler) notifyScheduleChanged() {
	for _, o := range s.observers {
		o.ScheduleChanged(s.events)
	}
}

func (s *Scheduler) notifyCurrentChanged() {
	for _, o := range s.observers {
		o.CurrentChanged(s.currentIndex)
	}
}

// emitListUpdate mirrors the original paired list + current index fan-out.
func (s *Scheduler) emitListUpdate() {
	s.notifyScheduleChanged()
	s.notifyCurrentChanged()
}
