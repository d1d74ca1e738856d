// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the booky TUI and CLI:
// rune- and width-aware string truncation, numeric formatting shims, and
// atomic file writes used by the config layer.
package util
