// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zerolog loggers booky writes to.
//
// The full-screen UI owns the terminal, so its logger writes JSON lines
// to ~/.booky/booky.log. Line-mode commands may log to stderr with the
// console writer instead. Everything takes and returns zerolog.Logger
// values; no global logger is installed.
package logging
