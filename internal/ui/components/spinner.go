// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is the awaiting-response indicator shown while a chat turn is
// in flight.
type Spinner struct {
	// Core spinner from bubbles
	spinner spinner.Model

	message   string
	startTime time.Time
	isActive  bool
	showTimer bool
}

// NewSpinner creates a new spinner with ASCII-compatible frames.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}

	return Spinner{
		spinner:   s,
		message:   "Thinking",
		showTimer: true,
	}
}

// Start activates the spinner and resets its timer. Returns the tick
// command that drives the animation.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.isActive
}

// SetMessage changes the label next to the animation.
func (s *Spinner) SetMessage(message string) {
	s.message = message
}

// Update advances the animation on spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner line, empty when inactive.
func (s *Spinner) View(theme *styles.Theme) string {
	if !s.isActive {
		return ""
	}

	out := theme.Spinner.Render(s.spinner.View()) + " " +
		theme.ThinkingText.Render(s.message+"...")
	if s.showTimer {
		elapsed := time.Since(s.startTime).Round(time.Second)
		out += " " + theme.Timestamp.Render("("+elapsed.String()+")")
	}
	return out
}
