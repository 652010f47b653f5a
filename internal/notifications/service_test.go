package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sbdstream/internal/notifications"
	"sbdstream/internal/testsupport"
)

type captured struct {
	title    string
	tags     string
	priority string
	body     string
}

func newCaptureServer(t *testing.T, status int) (*httptest.Server, *[]captured) {
	t.Helper()

	var requests []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, captured{
			title:    r.Header.Get("Title"),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
			body:     string(body),
		})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc := notifications.NewService(cfg)
	if err := svc.NotifyEventStarted(context.Background(), "Opening"); err != nil {
		t.Fatalf("noop notifier must return nil, got %v", err)
	}
}

func TestNotifyEventStartedPostsToNtfy(t *testing.T) {
	srv, requests := newCaptureServer(t, http.StatusOK)
	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(srv.URL))
	svc := notifications.NewService(cfg)

	if err := svc.NotifyEventStarted(context.Background(), "Opening"); err != nil {
		t.Fatalf("NotifyEventStarted: %v", err)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected one request, got %d", len(*requests))
	}
	got := (*requests)[0]
	if got.title != "SBDStream - Event Started" {
		t.Fatalf("title = %q", got.title)
	}
	if !strings.Contains(got.body, "Opening") {
		t.Fatalf("body = %q, want event title", got.body)
	}
	if !strings.Contains(got.tags, "event") {
		t.Fatalf("tags = %q", got.tags)
	}
}

func TestNotifyErrorUsesHighPriority(t *testing.T) {
	srv, requests := newCaptureServer(t, http.StatusOK)
	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(srv.URL))
	svc := notifications.NewService(cfg)

	err := svc.NotifyError(context.Background(), errors.New("disk full"), "schedule save")
	if err != nil {
		t.Fatalf("NotifyError: %v", err)
	}

	got := (*requests)[0]
	if got.priority != "high" {
		t.Fatalf("priority = %q, want high", got.priority)
	}
	if !strings.Contains(got.body, "schedule save") || !strings.Contains(got.body, "disk full") {
		t.Fatalf("body = %q", got.body)
	}
}

func TestNotifyNoMoreEventsMentionsLastTitle(t *testing.T) {
	srv, requests := newCaptureServer(t, http.StatusOK)
	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(srv.URL))
	svc := notifications.NewService(cfg)

	if err := svc.NotifyNoMoreEvents(context.Background(), "Closing"); err != nil {
		t.Fatalf("NotifyNoMoreEvents: %v", err)
	}
	if !strings.Contains((*requests)[0].body, "Closing") {
		t.Fatalf("body = %q, want last event title", (*requests)[0].body)
	}
}

func TestSendReportsServerErrors(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusForbidden)
	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(srv.URL))
	svc := notifications.NewService(cfg)

	err := svc.TestNotification(context.Background())
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected 403 error, got %v", err)
	}
}
