package memory

import (
	"context"
	"sync"

	"github.com/aretw0/spotlight/pkg/domain"
)

// Store implements ports.SettingsStore in memory.
// Safe for concurrent use. Nothing survives a restart.
type Store struct {
	data domain.Settings
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: domain.Settings{},
	}
}

// Get returns a flag.
func (s *Store) Get(ctx context.Context, key string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set writes a flag.
func (s *Store) Set(ctx context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Load returns a copy of all flags.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), nil
}

// Reset clears all flags.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = domain.Settings{}
	return nil
}
