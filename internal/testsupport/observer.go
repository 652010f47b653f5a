package testsupport

import (
	"sync"

	"sbdstream/internal/schedule"
)

// StartedEvent records one EventStarted notification.
type StartedEvent struct {
	VideoPath   string
	Title       string
	Description string
}

// CountdownStart records one CountdownStarted notification.
type CountdownStart struct {
	NextTitle          string
	Seconds            int
	CurrentTitle       string
	CurrentDescription string
}

// RecordingObserver captures every scheduler notification for assertions.
type RecordingObserver struct {
	mu sync.Mutex

	Started         []StartedEvent
	CountdownStarts []CountdownStart
	Ticks           []int
	ScheduleUpdates [][]*schedule.Event
	CurrentIndexes  []int
}

func (r *RecordingObserver) EventStarted(videoPath, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Started = append(r.Started, StartedEvent{VideoPath: videoPath, Title: title, Description: description})
}

func (r *RecordingObserver) CountdownStarted(nextTitle string, seconds int, currentTitle, currentDescription string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CountdownStarts = append(r.CountdownStarts, CountdownStart{
		NextTitle:          nextTitle,
		Seconds:            seconds,
		CurrentTitle:       currentTitle,
		CurrentDescription: currentDescription,
	})
}

func (r *RecordingObserver) CountdownTick(seconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Ticks = append(r.Ticks, seconds)
}

func (r *RecordingObserver) ScheduleChanged(events []*schedule.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]*schedule.Event, len(events))
	copy(snapshot, events)
	r.ScheduleUpdates = append(r.ScheduleUpdates, snapshot)
}

func (r *RecordingObserver) CurrentChanged(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndexes = append(r.CurrentIndexes, index)
}

// LastScheduleUpdate returns the most recent full-list notification, or nil.
func (r *RecordingObserver) LastScheduleUpdate() []*schedule.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ScheduleUpdates) == 0 {
		return nil
	}
	return r.ScheduleUpdates[len(r.ScheduleUpdates)-1]
}

// LastCurrentIndex returns the most recent current-index notification, or
// -1 when none has fired.
func (r *RecordingObserver) LastCurrentIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.CurrentIndexes) == 0 {
		return -1
	}
	return r.CurrentIndexes[len(r.CurrentIndexes)-1]
}

// Reset clears all recorded notifications.
func (r *RecordingObserver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Started = nil
	r.CountdownStarts = nil
	r.Ticks = nil
	r.ScheduleUpdates = nil
	r.CurrentIndexes = nil
}
