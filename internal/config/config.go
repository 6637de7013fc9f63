package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied when the corresponding field is absent from config.toml.
const (
	DefaultReconnectIntervalMs = 3000
	DefaultTypingTTLMs         = 5000
	DefaultWSPath              = "/ws/chat/"
)

// Config represents the global ~/.deskd/config.toml.
type Config struct {
	DefaultProfile string   `toml:"default_profile"`
	Server         Server   `toml:"server"`
	Realtime       Realtime `toml:"realtime"`
}

// Server holds the service desk endpoint configuration.
type Server struct {
	BaseURL string `toml:"base_url"`
	WSPath  string `toml:"ws_path"`
}

// Realtime holds tunables for the realtime channel. The reconnect
// interval is fixed (no backoff, no jitter) by design.
type Realtime struct {
	ReconnectIntervalMs int   `toml:"reconnect_interval_ms"`
	TypingTTLMs         int   `toml:"typing_ttl_ms"`
	AutoReconnect       *bool `toml:"auto_reconnect"`
}

// Load reads config from the given path and fills in defaults.
// Returns an error if the file is missing or malformed.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Default returns a config with all defaults applied and no server set.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.WSPath == "" {
		c.Server.WSPath = DefaultWSPath
	}
	if c.Realtime.ReconnectIntervalMs <= 0 {
		c.Realtime.ReconnectIntervalMs = DefaultReconnectIntervalMs
	}
	if c.Realtime.TypingTTLMs <= 0 {
		c.Realtime.TypingTTLMs = DefaultTypingTTLMs
	}
}

// ReconnectInterval returns the reconnect interval as a duration.
func (c *Config) ReconnectInterval() time.Duration {
	return time.Duration(c.Realtime.ReconnectIntervalMs) * time.Millisecond
}

// TypingTTL returns the typing expiry as a duration.
func (c *Config) TypingTTL() time.Duration {
	return time.Duration(c.Realtime.TypingTTLMs) * time.Millisecond
}

// AutoReconnect reports whether the channel should reconnect after a
// drop. Defaults to true when unset.
func (c *Config) AutoReconnect() bool {
	if c.Realtime.AutoReconnect == nil {
		return true
	}
	return *c.Realtime.AutoReconnect
}
