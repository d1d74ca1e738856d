// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault tests the built-in defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://localhost:8000" {
		t.Errorf("unexpected default url: %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Errorf("unexpected default timeout: %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("unexpected default theme: %q", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

// TestLoadFromPathMissingFile tests that a missing file yields
// defaults, not an error.
func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Backend.URL != Default().Backend.URL {
		t.Errorf("expected default url, got %q", cfg.Backend.URL)
	}
}

// TestLoadFromPath tests parsing a real file plus zero-value
// backfilling.
func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
url = "http://books.example.com:9999"

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Backend.URL != "http://books.example.com:9999" {
		t.Errorf("unexpected url: %q", cfg.Backend.URL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("unexpected theme: %q", cfg.UI.Theme)
	}
	// Unset fields fall back to defaults.
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Errorf("timeout should default, got %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Chat.MaxSearchResults != 10 {
		t.Errorf("max results should default, got %d", cfg.Chat.MaxSearchResults)
	}
}

// TestEnvOverrides tests BOOKY_* precedence over file values.
func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[backend]\nurl = \"http://file.example.com\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BOOKY_BACKEND_URL", "http://env.example.com")
	t.Setenv("BOOKY_THEME", "light")
	t.Setenv("BOOKY_TIMEOUT", "5")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Backend.URL != "http://env.example.com" {
		t.Errorf("env url should win, got %q", cfg.Backend.URL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("env theme should win, got %q", cfg.UI.Theme)
	}
	if cfg.Backend.TimeoutSeconds != 5 {
		t.Errorf("env timeout should win, got %d", cfg.Backend.TimeoutSeconds)
	}
}

// TestValidate tests rejection of unusable values.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{
			name:   "defaults_valid",
			mutate: func(c *Config) {},
			wantOK: true,
		},
		{
			name:   "https_valid",
			mutate: func(c *Config) { c.Backend.URL = "https://books.example.com" },
			wantOK: true,
		},
		{
			name:   "bad_scheme",
			mutate: func(c *Config) { c.Backend.URL = "ftp://books.example.com" },
			wantOK: false,
		},
		{
			name:   "missing_host",
			mutate: func(c *Config) { c.Backend.URL = "http://" },
			wantOK: false,
		},
		{
			name:   "unknown_theme",
			mutate: func(c *Config) { c.UI.Theme = "solarized" },
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// TestSetDefaultsClamps tests result-list clamping.
func TestSetDefaultsClamps(t *testing.T) {
	cfg := Default()
	cfg.Chat.MaxSearchResults = 500
	cfg.SetDefaults()
	if cfg.Chat.MaxSearchResults != 50 {
		t.Errorf("expected clamp to 50, got %d", cfg.Chat.MaxSearchResults)
	}

	cfg.Chat.MaxSearchResults = -3
	cfg.SetDefaults()
	if cfg.Chat.MaxSearchResults != 10 {
		t.Errorf("expected default 10, got %d", cfg.Chat.MaxSearchResults)
	}
}

// TestSaveLoadRoundTrip tests that a saved config loads back
// identically.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Backend.URL = "http://10.0.0.7:8000"
	cfg.UI.ShowTimestamps = false
	cfg.Chat.MaxSearchResults = 25

	if err := SaveToPath(cfg, path); err != nil {
		t.Fatalf("SaveToPath failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Backend.URL != cfg.Backend.URL {
		t.Errorf("url mismatch: %q", loaded.Backend.URL)
	}
	if loaded.UI.ShowTimestamps != cfg.UI.ShowTimestamps {
		t.Errorf("timestamps mismatch")
	}
	if loaded.Chat.MaxSearchResults != 25 {
		t.Errorf("max results mismatch: %d", loaded.Chat.MaxSearchResults)
	}
}
