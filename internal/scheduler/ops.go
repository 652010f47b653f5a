package scheduler

import (
	"strings"

	"sbdstream/internal/logging"
	"sbdstream/internal/schedule"
)

// EventData carries the fields for a new event. Time is an optional
// date-time string; an empty or unparseable value yields an unscheduled
// event. An empty Title is derived from the video file name; an empty
// Description falls back to the title, keeping the persisted row loadable.
type EventData struct {
	Time        string
	VideoPath   string
	Title       string
	Description string
}

// AddEvent constructs a new event, inserts it into the proper partition,
// persists, and recomputes derived state.
func (s *Scheduler) AddEvent(data EventData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(data.Title)
	if title == "" {
		title = schedule.DeriveTitle(data.VideoPath)
	}
	description := strings.TrimSpace(data.Description)
	if description == "" {
		description = title
	}

	event, warn := schedule.NewEvent(data.Time, data.VideoPath, title, description)
	if warn != nil {
		s.logger.Warn("event time unparseable; treating as unscheduled",
			logging.Error(warn),
			logging.String("title", title),
			logging.String(logging.FieldEventType, "event_time_parse_failed"),
		)
	}
	s.logger.Info("adding event", logging.String("title", title))

	if event.Occurrence.IsScheduled() {
		s.scheduled = append(s.scheduled, event)
	} else {
		s.unscheduled = append(s.unscheduled, event)
	}
	s.rebuild()
	s.persist()

	now := s.now()
	s.recalculateCurrentIndex(now)
	s.refreshCountdown(now)
	s.emitListUpdate()
}

// RemoveEventAt drops the event at index. Removing the active event clears
// the active reference before the current index is recomputed.
func (s *Scheduler) RemoveEventAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.events) {
		s.logger.Error("remove with invalid index", logging.Int("index", index))
		return ErrIndexOutOfRange
	}

	event := s.events[index]
	wasActive := event.ID == s.activeID
	s.logger.Info("removing event", logging.Int("index", index), logging.String("title", event.Title))

	s.removeFromPartitions(event.ID)
	s.rebuild()
	s.persist()

	if wasActive {
		s.activeID = ""
		s.currentIndex = -1
	}
	now := s.now()
	s.recalculateCurrentIndex(now)
	s.refreshCountdown(now)
	s.emitListUpdate()
	return nil
}

// UpdateField mutates exactly one field of the event at index. Date and time
// edits combine with the existing opposite half; an empty value or the
// "unscheduled" marker clears the time. The event relocates between
// partitions only when its time or scheduled status changed. The change is
// persisted unconditionally; the list notification is deferred one tick to
// avoid re-entering an in-progress UI edit commit.
func (s *Scheduler) UpdateField(index int, field Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.events) {
		s.logger.Error("update with invalid index", logging.Int("index", index), logging.String("field", string(field)))
		return ErrIndexOutOfRange
	}

	event := s.events[index]
	original := event.Occurrence
	now := s.now()

	var warn error
	switch field {
	case FieldDate:
		switch {
		case clearsTime(value):
			warn = event.SetTime("")
		case !event.Occurrence.IsScheduled():
			warn = event.SetTime(value + "T" + now.Format(schedule.ClockLayout))
		default:
			at, _ := event.Occurrence.At()
			warn = event.SetTime(value + "T" + at.Format(schedule.ClockLayout))
		}
	case FieldTime:
		switch {
		case clearsTime(value):
			warn = event.SetTime("")
		case !event.Occurrence.IsScheduled():
			warn = event.SetTime(now.Format(schedule.DateLayout) + "T" + value)
		default:
			at, _ := event.Occurrence.At()
			warn = event.SetTime(at.Format(schedule.DateLayout) + "T" + value)
		}
	case FieldVideo:
		event.VideoPath = value
	case FieldTitle:
		event.Title = value
	case FieldDescription:
		event.Description = value
	default:
		s.logger.Error("update with unknown field", logging.String("field", string(field)))
		return ErrUnknownField
	}

	if warn != nil {
		s.logger.Warn("edited time unparseable; event now unscheduled",
			logging.Error(warn),
			logging.String("title", event.Title),
			logging.String(logging.FieldEventType, "event_time_parse_failed"),
		)
	}

	timeChanged := !original.Equal(event.Occurrence)
	statusChanged := original.IsScheduled() != event.Occurrence.IsScheduled()

	if timeChanged || statusChanged {
		s.removeFromPartitions(event.ID)
		if event.Occurrence.IsScheduled() {
			s.scheduled = append(s.scheduled, event)
		} else {
			s.unscheduled = append(s.unscheduled, event)
		}
		s.rebuild()
	}

	// Pure metadata edits persist too.
	s.persist()
	s.recalculateCurrentIndex(now)
	if timeChanged || statusChanged {
		s.refreshCountdown(now)
	}
	s.pendingListNotify = true
	return nil
}

// TriggerEvent starts the event at index immediately, regardless of its
// scheduled time. Works identically for scheduled and unscheduled events.
func (s *Scheduler) TriggerEvent(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.events) {
		s.logger.Error("trigger with invalid index", logging.Int("index", index))
		return ErrIndexOutOfRange
	}

	event := s.events[index]
	s.logger.Info("manually triggering event", logging.Int("index", index), logging.String("title", event.Title))

	s.countdownActive = false
	s.currentIndex = index
	s.activeID = event.ID

	s.notifyEventStarted(event)
	s.emitListUpdate()
	return nil
}

func (s *Scheduler) removeFromPartitions(id string) {
	s.scheduled = removeByID(s.scheduled, id)
	s.unscheduled = removeByID(s.unscheduled, id)
}

func removeByID(events []*schedule.Event, id string) []*schedule.Event {
	for i, event := range events {
		if event.ID == id {
			return append(events[:i], events[i+1:]...)
		}
	}
	return events
}
