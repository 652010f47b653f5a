package schedule

import "github.com/spf13/afero"

// Store is the single-writer persistence handle for one schedule file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore builds a store over the given filesystem and schedule path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewFileStore builds a store over the OS filesystem.
func NewFileStore(path string) *Store {
	return NewStore(afero.NewOsFs(), path)
}

// Load reads the schedule file. Missing file yields an empty slice.
func (s *Store) Load() ([]*Event, error) {
	return LoadEvents(s.fs, s.path)
}

// Save rewrites the schedule file with the given events.
func (s *Store) Save(events []*Event) error {
	return SaveEvents(s.fs, s.path, events)
}

// Path returns the schedule file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the schedule file is present.
func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.path)
}
