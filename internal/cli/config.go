// Package cli is the terminal front end of the console: it drives the
// schedule planner against a running backend.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
}

// ServerConfig points the CLI at a console backend.
type ServerConfig struct {
	URL            string `toml:"url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://localhost:8000",
			TimeoutSeconds: 10,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ibamctl.toml"
	}
	return filepath.Join(home, ".config", "ibamctl", "config.toml")
}

// Load reads the config file at path (DefaultPath when empty), applies
// defaults for unset fields, and finally applies environment overrides
// IBAM_SERVER_URL and IBAM_TOKEN. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("IBAM_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("IBAM_TOKEN"); v != "" {
		cfg.Server.Token = v
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = 10
	}
	return cfg, nil
}

// Save writes the config to path (DefaultPath when empty), creating the
// parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}
