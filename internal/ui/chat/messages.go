// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat
// interface:
//   - Chat: reply delivery for a sent message
//   - Details: book detail fetch results
//   - Search: catalog query results
//   - Status: connectivity probes and poll ticks
//   - Config: hot-reloaded configuration
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"time"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
)

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// ChatResponseMsg delivers the backend's reply to a sent message.
// SessionID is the session the request was issued under; the model
// drops the message when it no longer matches.
type ChatResponseMsg struct {
	SessionID string
	Response  string
	Intent    string
	Source    string
	Err       error
}

// =============================================================================
// DETAIL MESSAGES
// =============================================================================

// BookDetailMsg delivers a detail fetch result. Seq is the generation
// number captured when the fetch started; the model applies only the
// result matching its current generation, so the latest request wins.
type BookDetailMsg struct {
	Seq    int
	Title  string
	Detail *backend.BookDetail
	Err    error
}

// =============================================================================
// SEARCH MESSAGES
// =============================================================================

// SearchResultsMsg delivers /search output.
type SearchResultsMsg struct {
	Query   string
	Results *backend.SearchResponse
	Err     error
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// BackendStatusMsg reports a connectivity probe verdict.
type BackendStatusMsg struct {
	Online bool
}

// StatusTickMsg fires on the poll cadence to request the next probe.
type StatusTickMsg struct {
	At time.Time
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a config hot-reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
