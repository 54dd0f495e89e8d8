package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/PolarWolf314/pm/internal/errors"
)

// Store reads and writes the settings document at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings document path.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the settings document.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Exists reports whether the settings document is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load decodes and validates the settings document.
func (s *Store) Load() (*Settings, error) {
	settings := NewSettings()

	md, err := toml.DecodeFile(s.path, settings)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", perrors.ErrConfigMissing, s.path)
		}
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrConfigCorrupt, s.path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s: unknown keys %s", perrors.ErrConfigCorrupt, s.path, strings.Join(keys, ", "))
	}

	if settings.Projects == nil {
		settings.Projects = make(map[string]map[string]ProjectRecord)
	}
	for group, projects := range settings.Projects {
		if projects == nil {
			settings.Projects[group] = make(map[string]ProjectRecord)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrConfigCorrupt, s.path, err)
	}

	return settings, nil
}

// Save rewrites the whole document. The new content goes to a temporary file
// in the same directory which then replaces the old document.
func (s *Store) Save(settings *Settings) error {
	if err := s.save(settings); err != nil {
		return fmt.Errorf("%w: %v", perrors.ErrPersistFailure, err)
	}
	return nil
}

func (s *Store) save(settings *Settings) error {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".pm-settings-*.toml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if err := toml.NewEncoder(tmp).Encode(settings); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// The document holds the hosting token.
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return err
	}

	committed = true
	return nil
}
