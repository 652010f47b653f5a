package scheduler

import "errors"

// ErrIndexOutOfRange marks a mutation or trigger aimed at an index outside
// the event sequence. The operation is a no-op; the error is reported and
// returned, never propagated as a crash.
var ErrIndexOutOfRange = errors.New("event index out of range")

// ErrUnknownField marks an UpdateField call with an unrecognized field.
var ErrUnknownField = errors.New("unknown event field")
