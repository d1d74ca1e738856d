// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN
// =============================================================================

const logo = `
 ____              _
| __ )  ___   ___ | | ___   _
|  _ \ / _ \ / _ \| |/ / | | |
| |_) | (_) | (_) |   <| |_| |
|____/ \___/ \___/|_|\_\\__, |
                        |___/
`

// Welcome is the first-run splash shown before any message is sent.
type Welcome struct {
	Version    string
	BackendURL string
	Online     bool

	width  int
	height int
}

// NewWelcome creates a new welcome screen.
func NewWelcome() Welcome {
	return Welcome{Version: "dev"}
}

// SetSize updates the dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the splash centered in the available space.
func (w *Welcome) View(theme *styles.Theme) string {
	lines := []string{
		theme.WelcomeLogo.Render(strings.TrimLeft(logo, "\n")),
		theme.WelcomeVersion.Render("booky " + w.Version),
		"",
		theme.WelcomeInfo.Render("Your book assistant. Ask about titles, prices and ratings."),
		theme.WelcomeInfo.Render("Backend: " + w.BackendURL + "  " + connectionWord(w.Online)),
		"",
		theme.WelcomePressKey.Render("Type a message to begin, or /help for commands."),
	}
	box := theme.WelcomeBox.Render(strings.Join(lines, "\n"))

	if w.width > 0 && w.height > 0 {
		return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func connectionWord(online bool) string {
	if online {
		return styles.RenderSuccess("connected")
	}
	return styles.RenderError("offline")
}
