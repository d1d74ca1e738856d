// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides the booky installer - a guided first-run setup.
//
// The installer creates ~/.booky, writes a default config.toml, and
// verifies that the Booky backend answers on the configured URL. It is
// safe to re-run; an existing config file is never overwritten without
// confirmation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const version = "1.0.0"

func main() {
	opts := setupOptions{}

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--yes", "-y":
			opts.assumeYes = true
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("booky installer v%s\n", version)
			return
		default:
			if strings.HasPrefix(arg, "--backend=") {
				opts.backendURL = strings.TrimPrefix(arg, "--backend=")
			} else {
				fmt.Fprintf(os.Stderr, "unknown flag: %s (see --help)\n", arg)
				os.Exit(1)
			}
		}
	}

	if !opts.assumeYes && !isTerminal() {
		fmt.Println("The booky installer needs an interactive terminal.")
		fmt.Println("Run with --yes to accept all defaults non-interactively.")
		os.Exit(1)
	}

	if err := runSetup(bufio.NewReader(os.Stdin), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}
}

// printHelp shows usage information
func printHelp() {
	fmt.Println(`booky installer v` + version + `

Usage: booky-installer [OPTIONS]

Options:
  --yes, -y        Accept all defaults, no prompts
  --backend=URL    Backend base URL (default http://localhost:8000)
  --help, -h       Show this help
  --version, -v    Show version

The installer creates ~/.booky and a starter config.toml, then checks
that the Booky backend is reachable.`)
}

// isTerminal checks if we're running in an interactive terminal
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
