package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// csvHeader is the fixed schedule file schema. Columns are matched by header
// name, so files with reordered columns still load.
var csvHeader = []string{"Date", "Time", "Video", "Title", "Description"}

// SaveEvents rewrites the schedule file at path with a header row plus one row
// per event, creating the parent directory if needed. The file is written to a
// temporary sibling and renamed into place so a reader never observes a
// half-written schedule.
func SaveEvents(fs afero.Fs, path string, events []*Event) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure schedule dir %s: %w", dir, err)
		}
	}

	tmp, err := afero.TempFile(fs, dir, ".schedule-*.csv")
	if err != nil {
		return fmt.Errorf("create temp schedule file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeEvents(tmp, events); err != nil {
		tmp.Close()
		_ = fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("close temp schedule file: %w", err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("replace schedule file %s: %w", path, err)
	}
	return nil
}

func writeEvents(w io.Writer, events []*Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write schedule header: %w", err)
	}
	for _, event := range events {
		dateCol, clockCol := "", ""
		if at, ok := event.Occurrence.At(); ok {
			dateCol = at.Format(DateLayout)
			clockCol = at.Format(ClockLayout)
		}
		row := []string{dateCol, clockCol, event.VideoPath, event.Title, event.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write schedule row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush schedule rows: %w", err)
	}
	return nil
}

// LoadEvents reads the schedule file at path and returns its events in file
// order. A missing file yields an empty slice and no error; treating that as
// fatal at startup is the caller's contract. Validation failures wrap
// ErrValidation and name the offending row and requirement.
func LoadEvents(fs afero.Fs, path string) ([]*Event, error) {
	return loadEvents(fs, path, time.Now())
}

func loadEvents(fs afero.Fs, path string, now time.Time) ([]*Event, error) {
	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open schedule file %s: %w", path, err)
	}
	defer file.Close()

	cr := csv.NewReader(file)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read schedule header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var events []*Event
	for rowNum := 2; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read schedule row %d: %w", rowNum, err)
		}

		event, err := eventFromRecord(record, columns, rowNum, now)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func eventFromRecord(record []string, columns map[string]int, rowNum int, now time.Time) (*Event, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	title := strings.TrimSpace(field("Title"))
	if title == "" {
		return nil, fmt.Errorf("%w: row %d: Title is required", ErrValidation, rowNum)
	}
	description := strings.TrimSpace(field("Description"))
	if description == "" {
		return nil, fmt.Errorf("%w: row %d: Description is required", ErrValidation, rowNum)
	}
	videoPath := field("Video")

	// A blank Time makes the row unscheduled regardless of Date content.
	clockCol := strings.TrimSpace(field("Time"))
	if clockCol == "" {
		event, _ := NewEvent("", videoPath, title, description)
		return event, nil
	}

	dateCol := strings.TrimSpace(field("Date"))
	if dateCol != "" {
		if _, err := time.ParseInLocation(DateLayout, dateCol, time.Local); err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid date %q (want %s)", ErrValidation, rowNum, dateCol, DateLayout)
		}
	} else {
		dateCol = now.Format(DateLayout)
	}

	combined := dateCol + "T" + clockCol
	occ, err := ParseOccurrence(combined)
	if err != nil || !occ.IsScheduled() {
		return nil, fmt.Errorf("%w: row %d: invalid time %q", ErrValidation, rowNum, clockCol)
	}

	event, _ := NewEvent("", videoPath, title, description)
	event.Occurrence = occ
	return event, nil
}
