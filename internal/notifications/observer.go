package notifications

import (
	"context"
	"log/slog"

	"sbdstream/internal/logging"
	"sbdstream/internal/scheduler"
)

// Observer adapts a notification service to the scheduler's observer
// interface. Only event starts and schedule exhaustion push; per-second
// countdown ticks and table redraws stay local.
func Observer(svc Service, logger *slog.Logger) scheduler.Observer {
	log := logging.NewComponentLogger(logger, "notify")

	report := func(err error, what string) {
		if err != nil {
			log.Warn("push notification failed",
				logging.Error(err),
				logging.String("notification", what),
				logging.String(logging.FieldEventType, "notify_failed"),
				logging.String(logging.FieldErrorHint, "check ntfy_topic and network"),
			)
		}
	}

	return scheduler.ObserverFuncs{
		OnEventStarted: func(_, title, _ string) {
			report(svc.NotifyEventStarted(context.Background(), title), "event_started")
		},
		OnCountdownStarted: func(nextTitle string, seconds int, currentTitle, _ string) {
			if nextTitle == scheduler.NoMoreEventsTitle && seconds == 0 {
				report(svc.NotifyNoMoreEvents(context.Background(), currentTitle), "no_more_events")
			}
		},
	}
}
