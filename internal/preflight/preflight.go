package preflight

import (
	"strings"

	"sbdstream/internal/config"
	"sbdstream/internal/schedule"
)

// RunAll executes all applicable preflight checks for the given config and
// schedule. Directory checks are only run for configured paths; video-path
// results are advisory and never block startup.
func RunAll(cfg *config.Config, csvPath string, events []*schedule.Event) []Result {
	var results []Result

	results = append(results, CheckScheduleFile(csvPath))

	if cfg != nil && cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	if cfg != nil && cfg.Paths.LockDir != "" {
		results = append(results, CheckDirectoryAccess("Lock directory", cfg.Paths.LockDir))
	}

	results = append(results, CheckVideoPaths(events)...)
	return results
}

// Blocking returns the subset of results that must pass before startup.
// Video-path checks are excluded; everything else is required.
func Blocking(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Passed {
			continue
		}
		if strings.HasPrefix(r.Name, "Video ") {
			continue
		}
		failed = append(failed, r)
	}
	return failed
}
