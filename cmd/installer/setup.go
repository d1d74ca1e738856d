// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - Setup steps for the booky installer.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
)

// probeTimeout bounds the backend health check.
const probeTimeout = 5 * time.Second

type setupOptions struct {
	assumeYes  bool
	backendURL string
}

// runSetup walks the setup steps: config directory, config file,
// backend reachability.
func runSetup(reader *bufio.Reader, opts setupOptions) error {
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("                               BOOKY INSTALLER")
	fmt.Println("                 A conversational book assistant for the terminal")
	fmt.Println("================================================================================")
	fmt.Println()
	fmt.Println("This installer will:")
	fmt.Println("  [1] Create the config directory (~/.booky)")
	fmt.Println("  [2] Write a starter config.toml")
	fmt.Println("  [3] Check the backend connection")
	fmt.Println()

	if !opts.assumeYes {
		fmt.Print("Press Enter to continue (or 'q' to quit): ")
		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(input) == "q" {
			fmt.Println("Installation cancelled.")
			return nil
		}
		fmt.Println()
	}

	// Step 1: config directory
	dir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("could not resolve home directory: %w", err)
	}
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	fmt.Printf("  [OK] Config directory: %s\n", dir)

	// Step 2: config file
	cfg, err := writeConfig(reader, opts)
	if err != nil {
		return err
	}

	// Step 3: backend probe
	probeBackend(cfg)

	fmt.Println()
	fmt.Println("Setup complete. Start chatting with:")
	fmt.Println()
	fmt.Println("    booky")
	fmt.Println()
	fmt.Println("Or try a one-shot question:")
	fmt.Println()
	fmt.Println("    booky ask \"recommend a science fiction classic\"")
	fmt.Println()
	return nil
}

// writeConfig writes the starter config, preserving an existing file
// unless the user opts in to overwriting it.
func writeConfig(reader *bufio.Reader, opts setupOptions) (*config.Config, error) {
	path, err := config.ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		keep := true
		if !opts.assumeYes {
			fmt.Printf("  [!]  Config already exists at %s\n", path)
			fmt.Print("       Overwrite with defaults? [y/N]: ")
			input, _ := reader.ReadString('\n')
			keep = !strings.EqualFold(strings.TrimSpace(input), "y")
		}
		if keep {
			fmt.Println("  [OK] Keeping existing config")
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("existing config is unreadable: %w", err)
			}
			return cfg, nil
		}
	}

	cfg := config.Default()
	if opts.backendURL != "" {
		cfg.Backend.URL = opts.backendURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return nil, fmt.Errorf("could not write config: %w", err)
	}
	fmt.Printf("  [OK] Wrote %s\n", path)
	return cfg, nil
}

// probeBackend checks the health endpoint and reports, but never fails
// setup: the backend may simply not be running yet.
func probeBackend(cfg *config.Config) {
	client := backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: probeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	health, err := client.Health(ctx)
	switch {
	case err != nil:
		fmt.Printf("  [!]  Backend not reachable at %s\n", cfg.Backend.URL)
		fmt.Println("       Start it and verify with: booky status")
	case !health.Healthy():
		fmt.Printf("  [!]  Backend at %s reports %q\n", cfg.Backend.URL, health.Status)
	default:
		fmt.Printf("  [OK] Backend healthy at %s (%d books loaded)\n",
			cfg.Backend.URL, health.TotalBooks)
	}
}
