// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/model"
	"github.com/jeranaias/booky-tui/internal/ui/components"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.ResumeMsg:
		// The terminal came back to the foreground; the indicator may
		// be stale.
		return m, CheckHealthCmd(m.monitor)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case ChatResponseMsg:
		return m.handleChatResponse(msg)

	case BookDetailMsg:
		return m.handleBookDetail(msg)

	case SearchResultsMsg:
		return m.handleSearchResults(msg)

	case BackendStatusMsg:
		m.online = msg.Online
		m.statusBar.Online = msg.Online
		m.welcome.Online = msg.Online
		return m, nil

	case StatusTickMsg:
		return m, tea.Batch(
			CheckHealthCmd(m.monitor),
			StatusTickCmd(m.monitor.Interval()),
		)

	case ConfigReloadedMsg:
		// Theme and backend URL take effect without a restart.
		if msg.Config.UI.Theme != m.cfg.UI.Theme {
			m.applyTheme(msg.Config.UI.Theme)
		}
		if msg.Config.Backend.URL != m.cfg.Backend.URL {
			m.client.SetBaseURL(msg.Config.Backend.URL)
		}
		m.cfg = msg.Config
		m.welcome.BackendURL = msg.Config.Backend.URL
		m.refreshViewport()
		m.log.Info().Msg("configuration reloaded")
		return m, CheckHealthCmd(m.monitor)
	}

	// Spinner ticks and anything else component-internal.
	if cmd := m.spin.Update(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.statusBar.Width = msg.Width
	m.welcome.SetSize(msg.Width, msg.Height)
	m.input.Width = msg.Width - 6

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = newViewport(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEYS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Digit shortcuts open details when the input line is empty, so
	// typing "1984" into a message still works.
	if m.input.Value() == "" && !m.showDetail {
		if n := digitKey(msg); n > 0 && n <= len(m.refs) {
			return m.openDetails(m.refs[n-1])
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// digitKey returns 1-9 for a bare digit key press, 0 otherwise.
func digitKey(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '0')
	}
	return 0
}

// =============================================================================
// SUBMIT
// =============================================================================

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	if strings.HasPrefix(content, "/") {
		m.input.SetValue("")
		return m.handleCommand(content)
	}

	// One request at a time: submissions while awaiting are dropped
	// without clearing the input.
	if m.state == StateAwaiting {
		return m, nil
	}

	m.input.SetValue("")
	m.started = true
	m.results = nil

	m.transcript.AppendUser(content)
	m.transcript.AppendPending()
	m.state = StateAwaiting
	m.statusBar.State = expandStatus(m.state)
	m.refreshViewport()

	m.log.Debug().Str("session", m.session.ID).Msg("chat turn sent")
	m.spin.SetMessage("Thinking")
	return m, tea.Batch(
		m.spin.Start(),
		SendChatCmd(m.client, m.session.ID, content, m.cfg.Timeout()),
	)
}

// =============================================================================
// CHAT RESPONSE
// =============================================================================

func (m Model) handleChatResponse(msg ChatResponseMsg) (tea.Model, tea.Cmd) {
	// A reply for a session the user has already abandoned is noise.
	if msg.SessionID != m.session.ID {
		m.log.Debug().Str("stale", msg.SessionID).Msg("dropped stale chat response")
		return m, nil
	}

	m.state = StateIdle
	if !m.detailLoading {
		m.spin.Stop()
	}

	pending := m.transcript.Pending()
	var cmd tea.Cmd
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Msg("chat turn failed")
		if pending != nil {
			pending.Resolve(FallbackReply, "error")
		}
		m.statusBar.State = expandStatus(m.state)
		// A transport failure is fresh evidence about connectivity.
		if backend.IsTransport(msg.Err) && m.monitor.Poke() {
			cmd = CheckHealthCmd(m.monitor)
		}
	} else {
		if pending != nil {
			pending.Resolve(msg.Response, msg.Intent)
			m.rebuildRefs(msg.Response)
		}
		m.statusBar.State = expandStatus(m.state)
	}

	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, cmd
}

// =============================================================================
// BOOK DETAILS
// =============================================================================

func (m Model) openDetails(title string) (tea.Model, tea.Cmd) {
	m.detailSeq++
	m.detailLoading = true
	m.spin.SetMessage("Loading details")
	m.log.Debug().Str("title", title).Int("seq", m.detailSeq).Msg("detail fetch")
	return m, tea.Batch(
		m.spin.Start(),
		FetchDetailsCmd(m.client, m.detailSeq, title, m.cfg.Timeout()),
	)
}

func (m Model) handleBookDetail(msg BookDetailMsg) (tea.Model, tea.Cmd) {
	// Only the newest fetch may win; a slow older response is dropped
	// even if it arrives after the winner.
	if msg.Seq != m.detailSeq {
		m.log.Debug().Int("seq", msg.Seq).Msg("dropped superseded detail response")
		return m, nil
	}

	m.detailLoading = false
	m.spin.SetMessage("Thinking")
	// A chat turn may still be in flight; only silence the indicator
	// when nothing else is waiting on it.
	if m.state != StateAwaiting {
		m.spin.Stop()
	}

	if msg.Err != nil {
		m.showDetail = false
		if backend.IsNotFound(msg.Err) {
			m.transcript.AppendBot("I couldn't find details for **"+msg.Title+"**.", "details_missing")
		} else {
			m.log.Warn().Err(msg.Err).Str("title", msg.Title).Msg("detail fetch failed")
			m.transcript.AppendBot(FallbackReply, "error")
		}
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil
	}

	m.detailCard = components.DetailCard{Detail: msg.Detail, Width: m.width}
	m.showDetail = true
	return m, nil
}

// =============================================================================
// SEARCH
// =============================================================================

func (m Model) handleSearchResults(msg SearchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn().Err(msg.Err).Str("query", msg.Query).Msg("search failed")
		m.transcript.AppendBot(FallbackReply, "error")
		m.refreshViewport()
		return m, nil
	}

	m.results = msg.Results
	// Result numbers double as detail shortcuts.
	titles := make([]string, 0, len(msg.Results.Books))
	for _, b := range msg.Results.Books {
		if len(titles) == maxNumberedRefs {
			break
		}
		titles = append(titles, b.Title)
	}
	m.refs = titles
	m.refIndex = map[string]int{}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

func (m Model) handleCommand(raw string) (tea.Model, tea.Cmd) {
	cmd, args, _ := strings.Cut(strings.TrimPrefix(raw, "/"), " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(cmd) {
	case "help":
		m.started = true
		m.transcript.AppendBot(HelpText(), "help")
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case "clear":
		// Same session, fresh transcript. An in-flight turn has no
		// pending row left to resolve, so stop waiting for it.
		m.transcript.Reset()
		m.results = nil
		m.refs = nil
		m.refIndex = map[string]int{}
		m.state = StateIdle
		m.spin.Stop()
		m.detailLoading = false
		m.statusBar.State = expandStatus(m.state)
		m.refreshViewport()
		return m, nil

	case "new":
		m.transcript.Reset()
		m.session = model.NewSession()
		m.results = nil
		m.refs = nil
		m.refIndex = map[string]int{}
		m.state = StateIdle
		m.spin.Stop()
		m.detailLoading = false
		m.statusBar.State = expandStatus(m.state)
		m.statusBar.Session = m.session.Short()
		m.log.Info().Str("session", m.session.ID).Msg("new session")
		m.refreshViewport()
		return m, nil

	case "theme":
		switch args {
		case "dark", "light", "auto":
		default:
			m.transcript.AppendBot("Usage: /theme <dark|light|auto>", "help")
			m.refreshViewport()
			return m, nil
		}
		m.cfg.UI.Theme = args
		m.applyTheme(args)
		m.transcript.AppendBot("Theme set to "+args+".", "status")
		m.refreshViewport()
		m.viewport.GotoBottom()
		m.log.Info().Str("theme", args).Msg("theme changed")
		return m, SaveConfigCmd(m.cfg, m.log)

	case "search":
		if args == "" {
			m.transcript.AppendBot("Usage: /search <query>", "help")
			m.refreshViewport()
			return m, nil
		}
		m.started = true
		return m, SearchCmd(m.client, args, m.cfg.Chat.MaxSearchResults, m.cfg.Timeout())

	case "details":
		if args == "" {
			m.transcript.AppendBot("Usage: /details <title>", "help")
			m.refreshViewport()
			return m, nil
		}
		m.started = true
		return m.openDetails(args)

	case "status":
		m.transcript.AppendBot(statusLine(m.online, m.cfg.Backend.URL), "status")
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, CheckHealthCmd(m.monitor)

	case "quit", "exit":
		return m, tea.Quit

	default:
		m.transcript.AppendBot("Unknown command: /"+cmd+". Try /help.", "help")
		m.refreshViewport()
		return m, nil
	}
}

func statusLine(online bool, url string) string {
	if online {
		return "Backend " + url + " is online."
	}
	return "Backend " + url + " is offline."
}
