// Package scheduler drives the event sequencing engine.
//
// The Scheduler owns the authoritative event list with its two partitions
// (time-sorted scheduled events followed by unscheduled events in insertion
// order), tracks the current index and the active event by stable ID, and
// runs the idle/countdown/playing state machine. One external ticker calls
// Tick once per second; the same tick source drives both the schedule check
// and the countdown so the two can never disagree about when an event fires.
//
// Mutations (add, remove, update-field, trigger) rebuild the master sequence,
// persist through the schedule store, recompute the current index, and fan
// out to registered observers. Observers are invoked synchronously and must
// not call back into mutation methods; the one deferred notification in
// UpdateField exists to keep a UI edit commit and the resulting table redraw
// out of the same call stack.
package scheduler
