package config

import "time"

// Backend selects the settings store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendGdata  Backend = "gdata"
	BackendRedis  Backend = "redis"
)

// Config holds all spotlight configuration.
type Config struct {
	ToursDir  string         `yaml:"tours_dir" koanf:"tours_dir"`
	LogLevel  string         `yaml:"log_level" koanf:"log_level"`
	LogJSON   bool           `yaml:"log_json" koanf:"log_json"`
	ForceShow bool           `yaml:"force_show" koanf:"force_show"`
	Storage   StorageConfig  `yaml:"storage" koanf:"storage"`
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	Renderer  RendererConfig `yaml:"renderer" koanf:"renderer"`
}

// StorageConfig selects and configures the settings store.
type StorageConfig struct {
	Backend Backend     `yaml:"backend" koanf:"backend"`
	Key     string      `yaml:"key" koanf:"key"`
	Path    string      `yaml:"path" koanf:"path"`
	AppName string      `yaml:"app_name" koanf:"app_name"`
	Redis   RedisConfig `yaml:"redis" koanf:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" koanf:"addr"`
	Password string `yaml:"password" koanf:"password"`
	DB       int    `yaml:"db" koanf:"db"`
	Prefix   string `yaml:"prefix" koanf:"prefix"`
}

// ServerConfig configures `spotlight serve`.
type ServerConfig struct {
	Addr    string `yaml:"addr" koanf:"addr"`
	Metrics bool   `yaml:"metrics" koanf:"metrics"`
}

// RendererConfig configures the headless document used by preview and simulate.
type RendererConfig struct {
	Width           float64       `yaml:"width" koanf:"width"`
	Height          float64       `yaml:"height" koanf:"height"`
	TransitionDelay time.Duration `yaml:"transition_delay" koanf:"transition_delay"`
}
