package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"sbdstream/internal/schedule"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckScheduleFile verifies the schedule CSV's parent directory exists and
// is writable. The file itself may be absent on first run; the load path
// handles that and the save path needs the directory.
func CheckScheduleFile(path string) Result {
	const name = "Schedule file"

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: directory does not exist)", dir)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", dir)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckVideoPaths reports one advisory result per event whose video path
// does not point at a readable file. All results here are advisory: a
// missing video never blocks startup because the operator may stage files
// during the stream.
func CheckVideoPaths(events []*schedule.Event) []Result {
	var results []Result
	for i, event := range events {
		name := fmt.Sprintf("Video #%d", i+1)
		if event.VideoPath == "" {
			results = append(results, Result{Name: name, Detail: "no video path"})
			continue
		}
		info, err := os.Stat(event.VideoPath)
		switch {
		case err != nil && os.IsNotExist(err):
			results = append(results, Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", event.VideoPath)})
		case err != nil:
			results = append(results, Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", event.VideoPath, err)})
		case info.IsDir():
			results = append(results, Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", event.VideoPath)})
		case unix.Access(event.VideoPath, unix.R_OK) != nil:
			results = append(results, Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable)", event.VideoPath)})
		default:
			results = append(results, Result{Name: name, Passed: true, Detail: event.VideoPath})
		}
	}
	return results
}
