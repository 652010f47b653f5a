package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"sbdstream/internal/schedule"
)

func TestCheckScheduleFileOK(t *testing.T) {
	dir := t.TempDir()
	result := CheckScheduleFile(filepath.Join(dir, "schedule.csv"))
	if !result.Passed {
		t.Fatalf("expected pass for writable dir, got: %s", result.Detail)
	}
}

func TestCheckScheduleFileMissingDir(t *testing.T) {
	result := CheckScheduleFile(filepath.Join(t.TempDir(), "nope", "schedule.csv"))
	if result.Passed {
		t.Fatal("expected failure for missing directory")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckVideoPaths(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.mp4")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	events := []*schedule.Event{
		{VideoPath: present, Title: "A"},
		{VideoPath: filepath.Join(dir, "absent.mp4"), Title: "B"},
		{VideoPath: "", Title: "C"},
	}

	results := CheckVideoPaths(events)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("present video should pass: %s", results[0].Detail)
	}
	if results[1].Passed || results[2].Passed {
		t.Fatal("absent and empty paths must fail")
	}
}

func TestBlockingExcludesVideoAdvisories(t *testing.T) {
	results := []Result{
		{Name: "Schedule file", Passed: true},
		{Name: "Video #1", Passed: false, Detail: "missing"},
		{Name: "Log directory", Passed: false, Detail: "denied"},
	}
	failed := Blocking(results)
	if len(failed) != 1 || failed[0].Name != "Log directory" {
		t.Fatalf("blocking = %+v", failed)
	}
}
