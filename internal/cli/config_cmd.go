// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection and editing command.
//
// Subcommands:
//   booky config              Show effective configuration
//   booky config path         Print the config file path
//   booky config get KEY      Print one value
//   booky config set KEY VAL  Set a value and save
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/config"
)

// RunConfig dispatches the config subcommands.
func RunConfig(cfg *config.Config, log zerolog.Logger, args Args) int {
	switch args.Subcommand {
	case "", "show":
		return configShow(cfg, args)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
		fmt.Println(path)
		return 0
	case "get":
		return configGet(cfg, args.ConfigKey)
	case "set":
		return configSet(cfg, log, args.ConfigKey, args.ConfigVal)
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand: %s\n", args.Subcommand)
		return 1
	}
}

// configShow prints the effective configuration.
func configShow(cfg *config.Config, args Args) int {
	if args.JSON {
		if err := NewJSONResponse("config", cfg).Print(); err != nil {
			return 1
		}
		return 0
	}

	path, _ := config.ConfigPath()

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Configuration"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	row := func(key, value string) {
		fmt.Printf("  %s %s\n",
			infoStyle.Render(fmt.Sprintf("%-28s", key)),
			commandStyle.Render(value))
	}

	row("backend.url", cfg.Backend.URL)
	row("backend.timeout_seconds", strconv.Itoa(cfg.Backend.TimeoutSeconds))
	row("backend.source_preference", cfg.Backend.SourcePreference)
	row("backend.health_interval_seconds", strconv.Itoa(cfg.Backend.HealthIntervalSeconds))
	row("ui.theme", cfg.UI.Theme)
	row("ui.show_timestamps", strconv.FormatBool(cfg.UI.ShowTimestamps))
	row("chat.max_search_results", strconv.Itoa(cfg.Chat.MaxSearchResults))

	fmt.Println()
	if path != "" {
		fmt.Println(infoStyle.Render("File: " + path))
	}
	fmt.Println(infoStyle.Render("Env overrides: BOOKY_BACKEND_URL, BOOKY_THEME, BOOKY_TIMEOUT"))
	fmt.Println()
	return 0
}

// configGet prints one value.
func configGet(cfg *config.Config, key string) int {
	value, ok := configValue(cfg, key)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown key: %s\n", key)
		return 1
	}
	fmt.Println(value)
	return 0
}

// configSet updates one value, validates, and saves.
func configSet(cfg *config.Config, log zerolog.Logger, key, value string) int {
	if key == "" || value == "" {
		fmt.Fprintln(os.Stderr, "usage: booky config set KEY VALUE")
		return 1
	}

	if err := applyConfigValue(cfg, key, value); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid value:", err)
		return 1
	}
	if err := config.Save(cfg); err != nil {
		log.Error().Err(err).Msg("config save failed")
		fmt.Fprintln(os.Stderr, "error: could not save config:", err)
		return 1
	}

	fmt.Printf("%s %s = %s\n", commandStyle.Render("[OK]"), key, value)
	return 0
}

// configValue reads one key. The key space mirrors the TOML layout.
func configValue(cfg *config.Config, key string) (string, bool) {
	switch strings.ToLower(key) {
	case "backend.url":
		return cfg.Backend.URL, true
	case "backend.timeout_seconds":
		return strconv.Itoa(cfg.Backend.TimeoutSeconds), true
	case "backend.source_preference":
		return cfg.Backend.SourcePreference, true
	case "backend.health_interval_seconds":
		return strconv.Itoa(cfg.Backend.HealthIntervalSeconds), true
	case "ui.theme":
		return cfg.UI.Theme, true
	case "ui.show_timestamps":
		return strconv.FormatBool(cfg.UI.ShowTimestamps), true
	case "chat.max_search_results":
		return strconv.Itoa(cfg.Chat.MaxSearchResults), true
	default:
		return "", false
	}
}

// applyConfigValue writes one key.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "backend.url":
		cfg.Backend.URL = value
	case "backend.timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.Backend.TimeoutSeconds = n
	case "backend.source_preference":
		cfg.Backend.SourcePreference = value
	case "backend.health_interval_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.Backend.HealthIntervalSeconds = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		cfg.UI.ShowTimestamps = b
	case "chat.max_search_results":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", key)
		}
		cfg.Chat.MaxSearchResults = n
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
