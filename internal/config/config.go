// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/booky-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the top-level configuration.
type Config struct {
	// Backend settings
	Backend BackendConfig `toml:"backend"`

	// UI settings
	UI UIConfig `toml:"ui"`

	// Chat behavior settings
	Chat ChatConfig `toml:"chat"`
}

// BackendConfig controls how the client reaches the dialogue API.
type BackendConfig struct {
	// URL is the API base URL.
	URL string `toml:"url"`

	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// SourcePreference selects the lookup source forwarded on chat
	// turns: "dataset", "google", "both" or "" (server decides).
	SourcePreference string `toml:"source_preference"`

	// HealthIntervalSeconds is the connectivity poll cadence.
	HealthIntervalSeconds int `toml:"health_interval_seconds"`
}

// UIConfig controls presentation.
type UIConfig struct {
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme"`

	// ShowTimestamps renders a clock next to each message.
	ShowTimestamps bool `toml:"show_timestamps"`
}

// ChatConfig controls conversation behavior.
type ChatConfig struct {
	// MaxSearchResults caps /search result lists (1-50).
	MaxSearchResults int `toml:"max_search_results"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:                   "http://localhost:8000",
			TimeoutSeconds:        30,
			HealthIntervalSeconds: 30,
		},
		UI: UIConfig{
			Theme:          "dark",
			ShowTimestamps: true,
		},
		Chat: ChatConfig{
			MaxSearchResults: 10,
		},
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// HealthInterval returns the poll cadence as a duration.
func (c *Config) HealthInterval() time.Duration {
	return time.Duration(c.Backend.HealthIntervalSeconds) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the booky configuration directory (~/.booky).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".booky"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the config file, falling back to defaults when it does
// not exist. Environment overrides are applied last, then the result
// is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A
// missing file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies BOOKY_* environment variables on top of
// the loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("BOOKY_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("BOOKY_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("BOOKY_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Backend.TimeoutSeconds = n
		}
	}
}

// SetDefaults fills zero values and clamps out-of-range settings.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Backend.URL == "" {
		c.Backend.URL = d.Backend.URL
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = d.Backend.TimeoutSeconds
	}
	if c.Backend.HealthIntervalSeconds <= 0 {
		c.Backend.HealthIntervalSeconds = d.Backend.HealthIntervalSeconds
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.Chat.MaxSearchResults <= 0 {
		c.Chat.MaxSearchResults = d.Chat.MaxSearchResults
	}
	if c.Chat.MaxSearchResults > 50 {
		c.Chat.MaxSearchResults = 50
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil {
		return fmt.Errorf("backend.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("backend.url: missing host")
	}

	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the default path atomically.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path atomically,
// so a crash mid-write never leaves a truncated file.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}
