// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the line-mode commands for booky.
//
// The default invocation starts the full-screen TUI; everything here
// is for scripting and quick lookups without taking over the terminal:
//
//	booky ask "question"      one-shot question, markdown-rendered reply
//	booky chat                plain readline REPL
//	booky search <query>      catalog search
//	booky details <title>     single-title record
//	booky status              backend connectivity
//	booky config [show|get|set|path]
//
// Output respects pipes: markdown rendering and color only happen when
// stdout is a TTY.
package cli
