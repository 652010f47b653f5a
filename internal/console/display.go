package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"sbdstream/internal/logging"
	"sbdstream/internal/schedule"
	"sbdstream/internal/scheduler"
)

// Display is the in-process console observer: it renders the schedule table
// and countdown state to a writer. It stands in for the operator's console
// window; a GUI would register its own observer the same way.
type Display struct {
	mu           sync.Mutex
	w            io.Writer
	logger       *slog.Logger
	fancy        bool
	videoExists  func(string) bool
	events       []*schedule.Event
	currentIndex int
}

var _ scheduler.Observer = (*Display)(nil)

// Option configures optional Display behavior.
type Option func(*Display)

// WithVideoCheck overrides the advisory video-path existence probe.
func WithVideoCheck(fn func(string) bool) Option {
	return func(d *Display) {
		if fn != nil {
			d.videoExists = fn
		}
	}
}

// WithPlainStyle forces the plain table style regardless of terminal
// detection.
func WithPlainStyle() Option {
	return func(d *Display) {
		d.fancy = false
	}
}

// NewDisplay builds a display writing to w. Rounded table borders are used
// when w is a terminal.
func NewDisplay(w io.Writer, logger *slog.Logger, opts ...Option) *Display {
	d := &Display{
		w:            w,
		logger:       logging.NewComponentLogger(logger, "console"),
		videoExists:  fileExists,
		currentIndex: -1,
	}
	if f, ok := w.(*os.File); ok {
		d.fancy = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EventStarted implements scheduler.Observer.
func (d *Display) EventStarted(videoPath, title, description string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "\n>> NOW PLAYING: %s\n", title)
	if description != "" {
		fmt.Fprintf(d.w, "   %s\n", description)
	}
	if videoPath == "" {
		fmt.Fprintln(d.w, "   (no video file)")
	} else if !d.videoExists(videoPath) {
		fmt.Fprintf(d.w, "   video: %s (missing)\n", videoPath)
	} else {
		fmt.Fprintf(d.w, "   video: %s\n", videoPath)
	}
}

// CountdownStarted implements scheduler.Observer.
func (d *Display) CountdownStarted(nextTitle string, seconds int, currentTitle, currentDescription string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seconds <= 0 {
		fmt.Fprintf(d.w, "\n-- %s (current: %s - %s)\n", nextTitle, currentTitle, currentDescription)
		return
	}
	fmt.Fprintf(d.w, "\n-- Next: %s in %s (current: %s)\n", nextTitle, FormatSeconds(seconds), currentTitle)
}

// CountdownTick implements scheduler.Observer. On a terminal the countdown
// overwrites itself in place; otherwise it logs at most every ten seconds to
// keep piped output readable.
func (d *Display) CountdownTick(seconds int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fancy {
		fmt.Fprintf(d.w, "\r   next event in %s ", FormatSeconds(seconds))
		return
	}
	if seconds%10 == 0 || seconds <= 5 {
		fmt.Fprintf(d.w, "   next event in %s\n", FormatSeconds(seconds))
	}
}

// ScheduleChanged implements scheduler.Observer.
func (d *Display) ScheduleChanged(events []*schedule.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = events
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, RenderSchedule(events, d.currentIndex, d.videoExists, d.fancy))
}

// CurrentChanged implements scheduler.Observer.
func (d *Display) CurrentChanged(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index == d.currentIndex {
		return
	}
	d.currentIndex = index
	if index < 0 || index >= len(d.events) {
		fmt.Fprintln(d.w, "   current event: none")
		return
	}
	fmt.Fprintf(d.w, "   current event: #%d %s\n", index+1, d.events[index].Title)
}

// FormatSeconds renders a second count as H:MM:SS, or M:SS under an hour.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
