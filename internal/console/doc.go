// Package console renders scheduler state to a terminal and reads operator
// commands from standard input. Display implements scheduler.Observer;
// CommandLoop turns typed commands into scheduler mutations.
package console
