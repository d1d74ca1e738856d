// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current conversation state.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the single-line footer: connectivity, conversation
// state, session tag and key hints.
type StatusBar struct {
	Width    int
	Online   bool
	State    Status
	Session  string
	Shortcut string
}

// NewStatusBar creates a status bar with the default hint line.
func NewStatusBar() StatusBar {
	return StatusBar{
		Shortcut: "enter send | 1-9 details | /help commands | ctrl+c quit",
	}
}

// View renders the bar padded to Width.
func (b *StatusBar) View(theme *styles.Theme) string {
	var conn string
	if b.Online {
		conn = theme.StatusOnline.Render(styles.StatusIndicators.Active + " online")
	} else {
		conn = theme.StatusOffline.Render(styles.StatusIndicators.Error + " offline")
	}

	parts := []string{conn, b.State.String()}
	if b.Session != "" {
		parts = append(parts, b.Session)
	}
	left := strings.Join(parts, "  |  ")
	right := theme.ShortcutDesc.Render(b.Shortcut)

	gap := b.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Hints go first when space runs out.
		right = ""
		gap = b.Width - lipgloss.Width(left) - 2
	}
	if gap < 0 {
		gap = 0
	}

	line := left + strings.Repeat(" ", gap) + right
	if b.Width > 2 && lipgloss.Width(line) > b.Width-2 {
		// Drop the session tag before clipping styled text.
		line = conn + "  |  " + b.State.String()
	}
	return theme.StatusBar.Render(line)
}
