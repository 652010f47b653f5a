package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sbdstream/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if resolved == "" {
		t.Fatal("resolved path should name the default location even when absent")
	}
	if cfg.Scheduler.TickInterval != 1 {
		t.Fatalf("tick_interval = %d, want default 1", cfg.Scheduler.TickInterval)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults wrong: %+v", cfg.Logging)
	}
	if cfg.Notifications.RequestTimeout != 10 {
		t.Fatalf("request_timeout = %d, want default 10", cfg.Notifications.RequestTimeout)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
log_dir = "~/logs"

[scheduler]
tick_interval = 5

[notifications]
ntfy_topic = "  https://ntfy.sh/my-stream  "

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved = %s, want %s", resolved, path)
	}
	if cfg.Paths.LogDir != filepath.Join(home, "logs") {
		t.Fatalf("log_dir = %s, want expansion under %s", cfg.Paths.LogDir, home)
	}
	if cfg.Scheduler.TickInterval != 5 {
		t.Fatalf("tick_interval = %d, want 5", cfg.Scheduler.TickInterval)
	}
	if cfg.Notifications.NtfyTopic != "https://ntfy.sh/my-stream" {
		t.Fatalf("ntfy_topic = %q, want trimmed", cfg.Notifications.NtfyTopic)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging normalization failed: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantSub string
	}{
		{
			"tick interval too large",
			"[scheduler]\ntick_interval = 600\n",
			"tick_interval",
		},
		{
			"bad log format",
			"[logging]\nformat = \"xml\"\n",
			"logging.format",
		},
		{
			"bad log level",
			"[logging]\nlevel = \"verbose\"\n",
			"logging.level",
		},
		{
			"timeout out of range",
			"[notifications]\nrequest_timeout = 900\n",
			"request_timeout",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("Load = %v, want error naming %s", err, tc.wantSub)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}

	// The sample must itself load cleanly.
	if _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}

	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
