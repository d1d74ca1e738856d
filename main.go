// booky - a conversational book assistant for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/cli"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/logging"
	"github.com/jeranaias/booky-tui/internal/status"
	"github.com/jeranaias/booky-tui/internal/ui/chat"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion()
		return
	case cli.CmdHelp:
		cli.Usage()
		return
	}

	cfg := loadConfig()
	log, closeLog := openLogger(cmd, args)
	defer closeLog()

	client := backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL:          cfg.Backend.URL,
		Timeout:          cfg.Timeout(),
		SourcePreference: cfg.Backend.SourcePreference,
	})
	monitor := status.NewMonitor(client, cfg.HealthInterval(), log)

	switch cmd {
	case cli.CmdAsk:
		os.Exit(cli.RunAsk(client, cfg, log, args))
	case cli.CmdChat:
		os.Exit(cli.RunChat(client, monitor, cfg, log, args))
	case cli.CmdSearch:
		os.Exit(cli.RunSearch(client, cfg, log, args))
	case cli.CmdDetails:
		os.Exit(cli.RunDetails(client, cfg, log, args))
	case cli.CmdStatus:
		os.Exit(cli.RunStatus(client, cfg, log, args))
	case cli.CmdConfig:
		os.Exit(cli.RunConfig(cfg, log, args))
	default:
		runTUI(cfg, client, monitor, log)
	}
}

// loadConfig reads the config file, falling back to defaults when it is
// missing or malformed. Startup never fails on a bad config file.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read config, using defaults: %v\n", err)
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	return cfg
}

// openLogger sets up logging for the selected command. The TUI owns the
// terminal, so it logs to a file; line commands log to stderr.
func openLogger(cmd cli.Command, args cli.Args) (zerolog.Logger, func()) {
	level := "info"
	if args.Verbose {
		level = "debug"
	}
	if args.Quiet {
		level = "error"
	}

	if cmd == cli.CmdTUI {
		dir, err := config.ConfigDir()
		if err == nil {
			err = config.EnsureConfigDir()
		}
		if err == nil {
			log, closer, err := logging.NewFileLogger(filepath.Join(dir, logging.DefaultLogFile), level)
			if err == nil {
				return log, func() { closer.Close() }
			}
		}
		return logging.Nop(), func() {}
	}

	return logging.NewConsoleLogger(level), func() {}
}

// runTUI starts the full-screen interface.
func runTUI(cfg *config.Config, client *backend.Client, monitor *status.Monitor, log zerolog.Logger) {
	theme := styles.NewTheme(cfg.UI.Theme)

	m := chat.New(theme, client, monitor, cfg, log)
	m.SetVersion(Version)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connectivity transitions flow into the update loop as messages.
	// The tick loop inside the chat model drives the checks; running
	// the monitor's own loop as well would double the poll cadence.
	monitor.OnChange(func(online bool) {
		p.Send(chat.BackendStatusMsg{Online: online})
	})

	// Live config reload. A broken watcher only disables reloads.
	if path, err := config.ConfigPath(); err == nil {
		if watcher, err := config.NewWatcher(path, log); err == nil {
			defer watcher.Close()
			go func() {
				for {
					select {
					case <-ctx.Done():
						return
					case next, ok := <-watcher.Reloaded:
						if !ok {
							return
						}
						p.Send(chat.ConfigReloadedMsg{Config: next})
					}
				}
			}()
		} else {
			log.Warn().Err(err).Msg("config watcher disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running booky: %v\n", err)
		os.Exit(1)
	}
}
