// Package notifications delivers scheduler milestones via ntfy push.
//
// The default implementation publishes to the topic configured in the config
// file and gracefully degrades to a no-op when notifications are disabled.
// The Observer adapter plugs the service into the scheduler's observer
// fan-out so event starts reach the operator's phone without any scheduler
// knowledge of HTTP.
package notifications
