package config

import "github.com/aretw0/spotlight/pkg/domain"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ToursDir: "tours",
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: BackendFile,
			Key:     domain.StorageKey,
			Path:    ".spotlight",
			AppName: "spotlight",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "spotlight:",
			},
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Metrics: true,
		},
		Renderer: RendererConfig{
			Width:           1280,
			Height:          800,
			TransitionDelay: domain.DefaultTransitionDelay,
		},
	}
}
