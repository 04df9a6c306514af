package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, domain.StorageKey, cfg.Storage.Key)
	assert.Equal(t, 300*time.Millisecond, cfg.Renderer.TransitionDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tours_dir: ./my-tours
log_level: debug
storage:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
renderer:
  transition_delay: 150ms
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./my-tours", cfg.ToursDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "spotlight:", cfg.Storage.Redis.Prefix, "unset keys keep defaults")
	assert.Equal(t, 150*time.Millisecond, cfg.Renderer.TransitionDelay)
	assert.Equal(t, 1280.0, cfg.Renderer.Width)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0644))

	t.Setenv("SPOTLIGHT_STORAGE__BACKEND", "memory")
	t.Setenv("SPOTLIGHT_FORCE_SHOW", "true")
	t.Setenv("SPOTLIGHT_SERVER__ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.ForceShow)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"no tours dir", func(c *Config) { c.ToursDir = "" }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"bad backend", func(c *Config) { c.Storage.Backend = "sqlite" }, false},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, false},
		{"file without path", func(c *Config) { c.Storage.Path = "" }, false},
		{"gdata without app", func(c *Config) {
			c.Storage.Backend = BackendGdata
			c.Storage.AppName = ""
		}, false},
		{"redis without addr", func(c *Config) {
			c.Storage.Backend = BackendRedis
			c.Storage.Redis.Addr = ""
		}, false},
		{"negative db", func(c *Config) {
			c.Storage.Backend = BackendRedis
			c.Storage.Redis.DB = -1
		}, false},
		{"memory ignores path", func(c *Config) {
			c.Storage.Backend = BackendMemory
			c.Storage.Path = ""
		}, true},
		{"zero viewport", func(c *Config) { c.Renderer.Width = 0 }, false},
		{"negative delay", func(c *Config) { c.Renderer.TransitionDelay = -time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
