// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends selectable via MEGAMART_STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Storage selects and parameterises the persister implementation.
type Storage struct {
	Backend string `default:"sqlite"`
	Path    string `default:"megamart.db"`
}

// Redis holds connection settings for the redis-backed persister.
// Only consulted when the storage backend is "redis".
type Redis struct {
	URL          string `default:"redis://localhost:6379/0"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

// Config is the full application configuration.
type Config struct {
	Env           string `default:"development"`
	SessionSecret string `split_words:"true" default:"megamart-dev-secret"`
	Seed          int64  `default:"1"`
	Storage       Storage
	Redis         Redis
}

// Load reads configuration from MEGAMART_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("megamart", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// Environment returns the parsed deployment environment.
func (c *Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}
