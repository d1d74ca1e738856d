// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for booky.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdSearch
	CmdDetails
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `booky - a conversational book assistant for the terminal

Booky answers questions about books: titles, authors, prices and
ratings, backed by a local dataset and Google Books.

Usage:
  booky                      Start TUI (default)
  booky ask "question"       Ask a single question
  booky chat                 Interactive chat (plain readline)
  booky search <query>       Search the catalog
  booky details <title>      Show the record for one title
  booky status, s            Show backend connectivity
  booky config [show|get|set|path]  Configuration
  booky version, -v          Show version
  booky help, -h             Show this help

Flags:
  --json        Machine-readable output where supported
  --quiet       Suppress informational output
  --verbose     Log at debug level

Environment:
  BOOKY_BACKEND_URL   Override the backend base URL
  BOOKY_THEME         Override the UI theme (dark, light, auto)
  BOOKY_TIMEOUT       Override the request timeout in seconds

Examples:
  booky ask "how much does Dune cost?"
  booky search "science fiction" --json
  booky details "The Hobbit"`

// Usage prints the command reference.
func Usage() {
	fmt.Println(usageText)
}

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(argv []string) (Command, Args) {
	var args Args
	var positional []string

	for _, a := range argv {
		switch a {
		case "--json":
			args.JSON = true
		case "--quiet", "-q":
			args.Quiet = true
		case "--verbose":
			args.Verbose = true
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(positional[0])
	rest := positional[1:]
	args.Raw = rest

	switch cmd {
	case "ask":
		args.Query = strings.Join(rest, " ")
		return CmdAsk, args
	case "chat":
		return CmdChat, args
	case "search":
		args.Query = strings.Join(rest, " ")
		return CmdSearch, args
	case "details", "detail":
		args.Query = strings.Join(rest, " ")
		return CmdDetails, args
	case "status", "s":
		return CmdStatus, args
	case "config":
		if len(rest) > 0 {
			args.Subcommand = strings.ToLower(rest[0])
		}
		if len(rest) > 1 {
			args.ConfigKey = rest[1]
		}
		if len(rest) > 2 {
			args.ConfigVal = strings.Join(rest[2:], " ")
		}
		return CmdConfig, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		// Unrecognized words read like a question.
		args.Query = strings.Join(positional, " ")
		return CmdAsk, args
	}
}

// PrintVersion prints build information.
func PrintVersion() {
	fmt.Printf("booky %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
