package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sbdstream/internal/config"
)

const userAgent = "SBDStream/0.1.0"

// Service defines the push notification surface exposed to the runner.
type Service interface {
	NotifyScheduleLoaded(ctx context.Context, count int) error
	NotifyEventStarted(ctx context.Context, title string) error
	NotifyNoMoreEvents(ctx context.Context, currentTitle string) error
	NotifyError(ctx context.Context, err error, contextLabel string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyScheduleLoaded(ctx context.Context, count int) error {
	data := payload{
		title:   "SBDStream - Schedule Loaded",
		message: fmt.Sprintf("Loaded schedule with %d events", count),
		tags:    []string{"sbdstream", "schedule", "loaded"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyEventStarted(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	data := payload{
		title:   "SBDStream - Event Started",
		message: fmt.Sprintf("Now playing: %s", title),
		tags:    []string{"sbdstream", "event", "started"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyNoMoreEvents(ctx context.Context, currentTitle string) error {
	currentTitle = strings.TrimSpace(currentTitle)
	message := "No more scheduled events"
	if currentTitle != "" {
		message = fmt.Sprintf("%s (last: %s)", message, currentTitle)
	}
	data := payload{
		title:   "SBDStream - Schedule Complete",
		message: message,
		tags:    []string{"sbdstream", "schedule", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "SBDStream - Error",
		message:  builder.String(),
		tags:     []string{"sbdstream", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "SBDStream - Test",
		message:  "Notification system test",
		tags:     []string{"sbdstream", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyScheduleLoaded(context.Context, int) error  { return nil }
func (noopService) NotifyEventStarted(context.Context, string) error { return nil }
func (noopService) NotifyNoMoreEvents(context.Context, string) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error { return nil }
func (noopService) TestNotification(context.Context) error           { return nil }
