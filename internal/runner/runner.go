package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"sbdstream/internal/config"
	"sbdstream/internal/console"
	"sbdstream/internal/logging"
	"sbdstream/internal/notifications"
	"sbdstream/internal/preflight"
	"sbdstream/internal/schedule"
	"sbdstream/internal/scheduler"
)

// Options configures runtime behavior.
type Options struct {
	// Input supplies operator commands; defaults to os.Stdin.
	Input io.Reader
	// Output receives schedule rendering and command feedback; defaults to
	// os.Stdout.
	Output io.Writer
	// Logger overrides the config-derived logger, mainly for tests.
	Logger *slog.Logger
}

// Run loads the schedule, acquires the single-instance lock, and drives the
// scheduler on a wall-clock ticker until the context is cancelled or the
// operator quits. A missing schedule file, failed preflight, or second
// running instance aborts startup.
func Run(cmdCtx context.Context, cfg *config.Config, csvPath string, opts Options) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	logger = logging.NewComponentLogger(logger, "runner")

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	store := schedule.NewFileStore(csvPath)
	exists, err := store.Exists()
	if err != nil {
		return fmt.Errorf("stat schedule file: %w", err)
	}
	if !exists {
		return fmt.Errorf("schedule file %s does not exist", csvPath)
	}

	lock := flock.New(lockPath(cfg, csvPath))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another sbdstream instance is already running")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release instance lock", logging.Error(err))
		}
	}()

	sched := scheduler.New(store, logger)

	display := console.NewDisplay(output, logger)
	sched.AddObserver(display)

	notifier := notifications.NewService(cfg)
	sched.AddObserver(notifications.Observer(notifier, logger))

	if err := sched.Load(); err != nil {
		if notifyErr := notifier.NotifyError(signalCtx, err, "schedule load"); notifyErr != nil {
			logger.Warn("error notification failed", logging.Error(notifyErr))
		}
		return fmt.Errorf("load schedule: %w", err)
	}

	events := sched.Events()
	results := preflight.RunAll(cfg, csvPath, events)
	for _, r := range results {
		if r.Passed {
			continue
		}
		logger.Warn("preflight check failed",
			logging.String(logging.FieldEventType, "preflight_failed"),
			logging.String("check", r.Name),
			logging.String("detail", r.Detail),
		)
	}
	if failed := preflight.Blocking(results); len(failed) > 0 {
		return fmt.Errorf("preflight: %s: %s", failed[0].Name, failed[0].Detail)
	}

	if err := notifier.NotifyScheduleLoaded(signalCtx, len(events)); err != nil {
		logger.Warn("schedule-loaded notification failed", logging.Error(err))
	}

	sched.Start()
	defer sched.Stop()
	logger.Info("sbdstream started",
		logging.String(logging.FieldEventType, "runner_started"),
		logging.String("schedule", csvPath),
		logging.Int("events", len(events)),
	)

	commands := console.NewCommandLoop(sched, input, output, logger)
	commandDone := make(chan error, 1)
	go func() {
		commandDone <- commands.Run(signalCtx)
	}()

	ticker := time.NewTicker(time.Duration(cfg.Scheduler.TickInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-signalCtx.Done():
			logger.Info("sbdstream shutting down")
			return nil
		case err := <-commandDone:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("command loop: %w", err)
			}
			logger.Info("sbdstream shutting down")
			return nil
		case now := <-ticker.C:
			sched.Tick(now)
		}
	}
}

// lockPath places the instance lock in the configured lock directory, or
// next to the schedule file when none is configured.
func lockPath(cfg *config.Config, csvPath string) string {
	dir := cfg.Paths.LockDir
	if dir == "" {
		dir = filepath.Dir(csvPath)
	}
	return filepath.Join(dir, "sbdstream.lock")
}
