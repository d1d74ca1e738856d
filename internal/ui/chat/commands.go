// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/status"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// SendChatCmd creates a command that sends one chat turn. The reply
// always comes back as a ChatResponseMsg tagged with sessionID.
func SendChatCmd(client *backend.Client, sessionID, content string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Chat(ctx, sessionID, content)
		if err != nil {
			return ChatResponseMsg{SessionID: sessionID, Err: err}
		}
		return ChatResponseMsg{
			SessionID: sessionID,
			Response:  resp.Response,
			Intent:    resp.Intent,
			Source:    resp.Source,
		}
	}
}

// FetchDetailsCmd creates a command that fetches the detail record for
// a title, tagged with the detail generation seq.
func FetchDetailsCmd(client *backend.Client, seq int, title string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := client.BookDetails(ctx, title)
		return BookDetailMsg{Seq: seq, Title: title, Detail: detail, Err: err}
	}
}

// SearchCmd creates a command that runs a catalog query.
func SearchCmd(client *backend.Client, query string, maxResults int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := client.Search(ctx, query, maxResults)
		return SearchResultsMsg{Query: query, Results: results, Err: err}
	}
}

// CheckHealthCmd creates a command that probes connectivity through
// the status monitor.
func CheckHealthCmd(monitor *status.Monitor) tea.Cmd {
	return func() tea.Msg {
		online := monitor.Check(context.Background())
		return BackendStatusMsg{Online: online}
	}
}

// SaveConfigCmd persists the configuration in the background. A write
// failure is logged, not surfaced; the in-memory setting already took
// effect.
func SaveConfigCmd(cfg *config.Config, log zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			log.Warn().Err(err).Msg("config save failed")
		}
		return nil
	}
}

// StatusTickCmd schedules the next poll tick.
func StatusTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return StatusTickMsg{At: t}
	})
}
