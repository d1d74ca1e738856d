// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/booky-tui/internal/model"
	"github.com/jeranaias/booky-tui/internal/ui/components"
)

// chromeHeight is the rows consumed by header, input and status bar.
const chromeHeight = 7

// newViewport builds the transcript viewport.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// expandStatus maps the conversation state onto the status bar.
func expandStatus(s State) components.Status {
	if s == StateAwaiting {
		return components.StatusThinking
	}
	return components.StatusReady
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if !m.started {
		return m.welcome.View(m.theme)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if spin := m.spin.View(m.theme); spin != "" {
		b.WriteString(spin)
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(max(m.width-2, 0)).Render(
		m.theme.InputPrompt.Render(m.input.View())))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View(m.theme))

	screen := b.String()
	if m.showDetail {
		return m.overlayDetail(screen)
	}
	return screen
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Booky")
	sub := m.theme.HeaderSubtitle.Render(" book assistant")
	return m.theme.Container.Render(title + sub)
}

// overlayDetail centers the detail modal over the chat screen. The
// backdrop is dropped rather than composited; the modal redraw on every
// frame keeps it visually stable.
func (m Model) overlayDetail(_ string) string {
	card := m.detailCard.View(m.theme)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshViewport re-renders the transcript (and any search results)
// into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	var b strings.Builder

	msgs := m.transcript.Messages()
	lastBot := lastBotIndex(msgs)
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg, i == lastBot))
	}

	if m.results != nil {
		list := components.ResultList{Results: m.results}
		b.WriteString("\n\n")
		b.WriteString(list.View(m.theme))
	}

	m.viewport.SetContent(b.String())
}

// lastBotIndex finds the most recent completed bot message; only its
// book references carry numbered badges.
func lastBotIndex(msgs []*model.Message) int {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == model.RoleBot && !msgs[i].IsPending {
			return i
		}
	}
	return -1
}

func (m *Model) renderMessage(msg *model.Message, withBadges bool) string {
	label := m.theme.SenderLabel.Render(msg.Role.DisplayName())
	if m.cfg.UI.ShowTimestamps {
		label += " " + m.theme.Timestamp.Render(msg.DisplayTime())
	}

	if msg.IsPending {
		return label + "\n" + m.theme.ThinkingText.Render("...")
	}

	width := max(m.width-10, 20)
	switch msg.Role {
	case model.RoleUser:
		body := m.theme.UserBubble.Width(width).Render(msg.Content)
		return label + "\n" + body
	default:
		refIndex := m.refIndex
		if !withBadges {
			refIndex = nil
		}
		text := components.RenderAnnotated(m.theme, msg.Content, refIndex)
		body := m.theme.BotBubble.Width(width).Render(text)
		return label + "\n" + body
	}
}
