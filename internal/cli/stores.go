package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/aretw0/spotlight/internal/config"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	gdataAdapter "github.com/aretw0/spotlight/pkg/adapters/gdata"
	"github.com/aretw0/spotlight/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/spotlight/pkg/adapters/redis"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/quasilyte/gdata/v2"
	backend "github.com/redis/go-redis/v9"
)

// DefaultProfile is the profile used when none is given.
const DefaultProfile = "default"

// Profile names become file paths and key suffixes, so they are kept to a
// safe alphabet. The HTTP API declares the same pattern.
var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Stores opens per-profile settings stores for the configured backend.
// Backend clients are shared across profiles.
type Stores struct {
	cfg config.StorageConfig

	mu     sync.Mutex
	memory map[string]*memory.Store
	redis  *backend.Client
	gdata  *gdata.Manager
}

// NewStores prepares the backend named in cfg.
func NewStores(cfg config.StorageConfig) (*Stores, error) {
	s := &Stores{cfg: cfg, memory: make(map[string]*memory.Store)}

	switch cfg.Backend {
	case config.BackendRedis:
		s.redis = backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.BackendGdata:
		m, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
		if err != nil {
			return nil, fmt.Errorf("failed to open app data for %q: %w", cfg.AppName, err)
		}
		s.gdata = m
	case config.BackendMemory, config.BackendFile:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return s, nil
}

// Open returns the store for profile. An empty profile means DefaultProfile.
func (s *Stores) Open(profile string) (ports.SettingsStore, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	if !profilePattern.MatchString(profile) {
		return nil, fmt.Errorf("invalid profile %q", profile)
	}

	switch s.cfg.Backend {
	case config.BackendMemory:
		s.mu.Lock()
		defer s.mu.Unlock()
		st, ok := s.memory[profile]
		if !ok {
			st = memory.NewStore()
			s.memory[profile] = st
		}
		return st, nil

	case config.BackendFile:
		dir := s.cfg.Path
		if profile != DefaultProfile {
			dir = filepath.Join(dir, "profiles", profile)
		}
		return file.NewStore(dir, s.cfg.Key), nil

	case config.BackendGdata:
		key := s.cfg.Key
		if profile != DefaultProfile {
			key = key + "_" + profile
		}
		return gdataAdapter.New(s.gdata, key), nil

	case config.BackendRedis:
		prefix := s.cfg.Redis.Prefix
		if profile != DefaultProfile {
			prefix = prefix + profile + ":"
		}
		return redisAdapter.NewFromClient(s.redis,
			redisAdapter.WithPrefix(prefix),
			redisAdapter.WithKey(s.cfg.Key),
		), nil
	}
	return nil, errors.New("stores not initialized")
}

// Close releases shared backend clients.
func (s *Stores) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
