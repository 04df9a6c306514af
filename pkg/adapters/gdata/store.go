// Package gdata stores tour settings in the per-user application data
// directory managed by quasilyte/gdata.
package gdata

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/quasilyte/gdata/v2"
)

const settingsObject = "tours"

// Store implements ports.SettingsStore on a gdata.Manager.
// A nil manager puts the store in degraded mode: flags live in memory only.
type Store struct {
	manager *gdata.Manager
	key     string

	mu       sync.Mutex
	fallback domain.Settings
}

// Open creates a manager for appName and wraps it.
func Open(appName, key string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open app data for %q: %w", appName, err)
	}
	return New(m, key), nil
}

// New wraps an existing manager. An empty key defaults to domain.StorageKey.
func New(manager *gdata.Manager, key string) *Store {
	if key == "" {
		key = domain.StorageKey
	}
	return &Store{manager: manager, key: key, fallback: domain.Settings{}}
}

// Degraded reports whether the store has no durable backing.
func (s *Store) Degraded() bool {
	return s.manager == nil
}

// Get returns a flag and whether it was ever written.
func (s *Store) Get(ctx context.Context, key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return false, false, err
	}
	v, ok := settings[key]
	return v, ok, nil
}

// Set writes a flag and saves the whole object.
func (s *Store) Set(ctx context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}
	settings[key] = value
	return s.save(settings)
}

// Load returns a copy of all flags. A corrupt property reads as empty.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Reset overwrites the property with an empty object.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(domain.Settings{})
}

func (s *Store) load() (domain.Settings, error) {
	if s.manager == nil {
		return s.fallback.Clone(), nil
	}
	if !s.manager.ObjectPropExists(settingsObject, s.key) {
		return domain.Settings{}, nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return domain.DecodeSettings(data), nil
}

func (s *Store) save(settings domain.Settings) error {
	if s.manager == nil {
		s.fallback = settings.Clone()
		return nil
	}
	data, err := domain.EncodeSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, s.key, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
