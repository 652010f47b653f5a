// Package runner wires the scheduler, console, and notification service
// together and drives the tick loop for the lifetime of a session. It also
// enforces single-instance execution through a file lock so two operators
// cannot mutate the same schedule concurrently.
package runner
