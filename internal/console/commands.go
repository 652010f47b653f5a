package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sbdstream/internal/logging"
	"sbdstream/internal/scheduler"
)

// Controller abstracts the scheduler mutations the command loop drives.
// It allows mocking for tests and decouples from the concrete Scheduler.
type Controller interface {
	AddEvent(data scheduler.EventData)
	RemoveEventAt(index int) error
	UpdateField(index int, field scheduler.Field, value string) error
	TriggerEvent(index int) error
	HandleVideoFinished()
}

// CommandLoop reads operator commands line by line and dispatches them to a
// Controller. One command per line; blank lines are ignored.
type CommandLoop struct {
	controller Controller
	in         io.Reader
	out        io.Writer
	logger     *slog.Logger
}

// NewCommandLoop builds a command loop reading from in and echoing command
// feedback to out.
func NewCommandLoop(controller Controller, in io.Reader, out io.Writer, logger *slog.Logger) *CommandLoop {
	return &CommandLoop{
		controller: controller,
		in:         in,
		out:        out,
		logger:     logging.NewComponentLogger(logger, "console"),
	}
}

// errQuit signals a clean operator-requested shutdown.
var errQuit = errors.New("quit requested")

// Run consumes commands until the input closes, the operator quits, or the
// context is cancelled. Input reads are blocking, so cancellation is only
// observed between commands; Run always returns nil on EOF or quit.
func (l *CommandLoop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		err := l.dispatch(strings.TrimSpace(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(l.out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command input: %w", err)
	}
	return nil
}

func (l *CommandLoop) dispatch(line string) error {
	if line == "" {
		return nil
	}
	name, rest := splitCommand(line)

	switch name {
	case "help", "h", "?":
		l.printHelp()
		return nil

	case "trigger", "t":
		index, err := parseIndex(rest)
		if err != nil {
			return err
		}
		if err := l.controller.TriggerEvent(index); err != nil {
			return fmt.Errorf("trigger #%d: %w", index+1, err)
		}
		fmt.Fprintf(l.out, "triggered #%d\n", index+1)
		return nil

	case "remove", "rm":
		index, err := parseIndex(rest)
		if err != nil {
			return err
		}
		if err := l.controller.RemoveEventAt(index); err != nil {
			return fmt.Errorf("remove #%d: %w", index+1, err)
		}
		fmt.Fprintf(l.out, "removed #%d\n", index+1)
		return nil

	case "add":
		data, err := parseAddArgs(rest)
		if err != nil {
			return err
		}
		l.controller.AddEvent(data)
		fmt.Fprintln(l.out, "added")
		return nil

	case "set":
		index, field, value, err := parseSetArgs(rest)
		if err != nil {
			return err
		}
		if err := l.controller.UpdateField(index, field, value); err != nil {
			return fmt.Errorf("set #%d %s: %w", index+1, field, err)
		}
		fmt.Fprintf(l.out, "set #%d %s\n", index+1, field)
		return nil

	case "done", "finished":
		l.controller.HandleVideoFinished()
		fmt.Fprintln(l.out, "video finished")
		return nil

	case "quit", "q", "exit":
		l.logger.Info("operator requested shutdown")
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
}

func (l *CommandLoop) printHelp() {
	fmt.Fprint(l.out, `commands:
  trigger N              start event N now
  rm N                   remove event N
  add [TIME|-] VIDEO TITLE [DESC]
                         add an event; use - for no scheduled time
  set N FIELD VALUE      edit a field (date, time, video, title, description)
  done                   mark the playing video as finished
  help                   show this help
  quit                   end the session
`)
}

func splitCommand(line string) (name, rest string) {
	name, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(rest)
}

// parseIndex converts the operator's 1-based event number into the
// scheduler's 0-based index.
func parseIndex(arg string) (int, error) {
	if arg == "" {
		return 0, errors.New("event number required")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid event number %q", arg)
	}
	return n - 1, nil
}

// parseAddArgs parses `add [TIME|-] VIDEO TITLE [DESC]`. TIME is optional and
// recognized by shape; `-` stands for an unscheduled event explicitly.
func parseAddArgs(rest string) (scheduler.EventData, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return scheduler.EventData{}, errors.New("usage: add [TIME|-] VIDEO TITLE [DESC]")
	}

	var data scheduler.EventData
	if fields[0] == "-" {
		fields = fields[1:]
	} else if looksLikeTimestamp(fields[0]) {
		data.Time = fields[0]
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return scheduler.EventData{}, errors.New("video path required")
	}
	data.VideoPath = fields[0]
	fields = fields[1:]
	if len(fields) > 0 {
		data.Title = fields[0]
		data.Description = strings.Join(fields[1:], " ")
	}
	return data, nil
}

func parseSetArgs(rest string) (int, scheduler.Field, string, error) {
	fields := strings.SplitN(rest, " ", 3)
	if len(fields) < 3 {
		return 0, "", "", errors.New("usage: set N FIELD VALUE")
	}
	index, err := parseIndex(fields[0])
	if err != nil {
		return 0, "", "", err
	}
	field, ok := scheduler.ParseField(fields[1])
	if !ok {
		return 0, "", "", fmt.Errorf("unknown field %q", fields[1])
	}
	return index, field, strings.TrimSpace(fields[2]), nil
}

// looksLikeTimestamp reports whether the token resembles a date, clock, or
// combined timestamp rather than a file path.
func looksLikeTimestamp(token string) bool {
	if strings.ContainsAny(token, "/\\") {
		return false
	}
	if strings.Count(token, ":") >= 1 && !strings.Contains(token, ".") {
		return true
	}
	return strings.Count(token, "-") == 2 && len(token) >= 10 && token[4] == '-'
}
