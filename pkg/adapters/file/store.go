// Package file provides filesystem adapters: a JSON settings store and a YAML tour loader.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/spotlight/pkg/domain"
)

// Store implements ports.SettingsStore as a single JSON object on disk,
// at <BasePath>/<Key>.json.
type Store struct {
	BasePath string
	Key      string

	mu sync.Mutex
}

// NewStore creates a Store. Empty arguments default to ".spotlight" and domain.StorageKey.
func NewStore(basePath, key string) *Store {
	if basePath == "" {
		basePath = ".spotlight"
	}
	if key == "" {
		key = domain.StorageKey
	}
	return &Store{BasePath: basePath, Key: key}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return filepath.Join(s.BasePath, s.Key+".json")
}

// Get returns a flag.
func (s *Store) Get(ctx context.Context, key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	if err != nil {
		return false, false, err
	}
	v, ok := settings[key]
	return v, ok, nil
}

// Set writes a flag and persists the whole object.
func (s *Store) Set(ctx context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.read()
	if err != nil {
		return err
	}
	settings[key] = value
	return s.write(settings)
}

// Load returns all flags.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Reset removes the settings file.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete settings file: %w", err)
	}
	return nil
}

// read loads the settings object. A missing or corrupt file reads as empty.
func (s *Store) read() (domain.Settings, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return domain.DecodeSettings(data), nil
}

// write persists the settings atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) write(settings domain.Settings) error {
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure settings directory: %w", err)
	}

	data, err := domain.EncodeSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+s.Key+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	dest := s.Path()
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove existing settings file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file to settings file: %w", err)
	}
	return nil
}
