package scheduler

import "sbdstream/internal/schedule"

// Observer receives scheduler state notifications. Implementations are
// invoked synchronously from within tick and mutation handlers and must not
// re-enter the scheduler's mutation methods.
type Observer interface {
	// EventStarted fires when a scheduled, arrived, or manually triggered
	// event begins playing.
	EventStarted(videoPath, title, description string)

	// CountdownStarted fires when the scheduler enters (or re-enters) the
	// countdown toward the next scheduled event. Seconds is zero when no
	// scheduled event remains; currentTitle and currentDescription describe
	// the most recently active event for display context.
	CountdownStarted(nextTitle string, seconds int, currentTitle, currentDescription string)

	// CountdownTick fires once per second while counting down.
	CountdownTick(seconds int)

	// ScheduleChanged fires with the full ordered event sequence whenever the
	// list is loaded or modified.
	ScheduleChanged(events []*schedule.Event)

	// CurrentChanged fires when the current index changes; -1 means none.
	CurrentChanged(index int)
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil fields
// are skipped.
type ObserverFuncs struct {
	OnEventStarted     func(videoPath, title, description string)
	OnCountdownStarted func(nextTitle string, seconds int, currentTitle, currentDescription string)
	OnCountdownTick    func(seconds int)
	OnScheduleChanged  func(events []*schedule.Event)
	OnCurrentChanged   func(index int)
}

func (o ObserverFuncs) EventStarted(videoPath, title, description string) {
	if o.OnEventStarted != nil {
		o.OnEventStarted(videoPath, title, description)
	}
}

func (o ObserverFuncs) CountdownStarted(nextTitle string, seconds int, currentTitle, currentDescription string) {
	if o.OnCountdownStarted != nil {
		o.OnCountdownStarted(nextTitle, seconds, currentTitle, currentDescription)
	}
}

func (o ObserverFuncs) CountdownTick(seconds int) {
	if o.OnCountdownTick != nil {
		o.OnCountdownTick(seconds)
	}
}

func (o ObserverFuncs) ScheduleChanged(events []*schedule.Event) {
	if o.OnScheduleChanged != nil {
		o.OnScheduleChanged(events)
	}
}

func (o ObserverFuncs) CurrentChanged(index int) {
	if o.OnCurrentChanged != nil {
		o.OnCurrentChanged(index)
	}
}
