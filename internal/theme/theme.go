// Package theme persists the dark/light preference. The file is read once by
// Init and written through by Set; callers receive the Store by injection.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// prefs is the on-disk layout; "theme" is the fixed key.
type prefs struct {
	Theme Mode `yaml:"theme"`
}

type Store struct {
	mu   sync.RWMutex
	path string
	mode Mode
}

// Init reads the preference at path. A missing file means Light.
func Init(path string) (*Store, error) {
	s := &Store{path: path, mode: Light}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}

	var p prefs
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding theme: %w", err)
	}

	if p.Theme == Dark {
		s.mode = Dark
	}

	return s, nil
}

func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mode
}

func (s *Store) Dark() bool {
	return s.Mode() == Dark
}

// Set records the preference and writes it to disk before returning.
func (s *Store) Set(dark bool) error {
	mode := Light
	if dark {
		mode = Dark
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := yaml.Marshal(prefs{Theme: mode})
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating theme directory: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing theme: %w", err)
	}

	s.mode = mode

	return nil
}

// Toggle flips the preference and persists it.
func (s *Store) Toggle() error {
	return s.Set(!s.Dark())
}
