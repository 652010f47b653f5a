// Package preflight provides readiness checks for the filesystem paths
// sbdstream depends on.
//
// The runner calls RunAll before entering the tick loop. Directory checks
// are blocking: a schedule directory that cannot be written would make
// every later save fail, so startup aborts instead. Video-path checks are
// advisory only and surface as warnings.
package preflight
