// Package redis stores tour settings in Redis, so several server replicas
// can share one profile's flags.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/spotlight/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const lockTTL = 5 * time.Second

// Store implements ports.SettingsStore as one string key holding the JSON object.
type Store struct {
	client *backend.Client
	prefix string
	key    string
	locker *Locker
	owned  bool
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithKey sets the settings key. Defaults to domain.StorageKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	s := NewFromClient(rdb, opts...)
	s.owned = true
	return s
}

// NewFromClient creates a store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "spotlight:",
		key:    domain.StorageKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.locker = NewLocker(client, s.prefix)
	return s
}

// Key returns the full Redis key of the settings object.
func (s *Store) Key() string {
	return s.prefix + s.key
}

// Close releases the client if the store created it.
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}

// Get reads one flag. The second result reports whether it was ever written.
func (s *Store) Get(ctx context.Context, key string) (bool, bool, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return false, false, err
	}
	v, ok := settings[key]
	return v, ok, nil
}

// Set updates one flag under the store lock.
func (s *Store) Set(ctx context.Context, key string, value bool) error {
	unlock, err := s.locker.Lock(ctx, s.key, lockTTL)
	if err != nil {
		return err
	}
	defer func() { _ = unlock(context.WithoutCancel(ctx)) }()

	settings, err := s.Load(ctx)
	if err != nil {
		return err
	}
	settings[key] = value

	data, err := domain.EncodeSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.client.Set(ctx, s.Key(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings to redis: %w", err)
	}
	return nil
}

// Load reads the object. A missing or corrupt value reads as empty.
func (s *Store) Load(ctx context.Context) (domain.Settings, error) {
	data, err := s.client.Get(ctx, s.Key()).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to load settings from redis: %w", err)
	}
	return domain.DecodeSettings(data), nil
}

// Reset deletes the object under the store lock, so it cannot interleave
// with a concurrent Set.
func (s *Store) Reset(ctx context.Context) error {
	unlock, err := s.locker.Lock(ctx, s.key, lockTTL)
	if err != nil {
		return err
	}
	defer func() { _ = unlock(context.WithoutCancel(ctx)) }()

	if err := s.client.Del(ctx, s.Key()).Err(); err != nil {
		return fmt.Errorf("failed to delete settings from redis: %w", err)
	}
	return nil
}
