// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/annotate"
	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/model"
	"github.com/jeranaias/booky-tui/internal/status"
	"github.com/jeranaias/booky-tui/internal/ui/components"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// =============================================================================
// CONVERSATION STATE
// =============================================================================

// State represents the current state of the conversation.
type State int

const (
	// StateIdle means no chat request is in flight.
	StateIdle State = iota

	// StateAwaiting means one request is outstanding. Submissions are
	// ignored until the reply (or its failure) lands.
	StateAwaiting
)

// FallbackReply is shown in place of a reply when a chat turn fails.
const FallbackReply = "Sorry, I encountered an error. Please try again."

// maxNumberedRefs caps the badge shortcuts at the digit keys.
const maxNumberedRefs = 9

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Dependencies
	client  *backend.Client
	monitor *status.Monitor
	cfg     *config.Config
	log     zerolog.Logger

	// Conversation
	transcript *model.Transcript
	session    model.Session

	// Book references from the latest bot reply. refs[i] answers the
	// digit key i+1; refIndex styles the badges inline.
	refs     []string
	refIndex map[string]int

	// Detail modal. detailSeq is the generation of the newest fetch;
	// results from older generations are discarded. detailLoading
	// keeps the spinner up until that newest fetch resolves.
	detailSeq     int
	detailLoading bool
	showDetail    bool
	detailCard    components.DetailCard

	// Search results block, shown until the next action replaces it.
	results *backend.SearchResponse

	// Styling
	theme *styles.Theme

	// Components
	input     textinput.Model
	viewport  viewport.Model
	spin      components.Spinner
	statusBar components.StatusBar
	welcome   components.Welcome
	keys      KeyMap

	// Dimensions
	width  int
	height int
	ready  bool

	// started flips after the first submission hides the welcome
	// splash.
	started bool

	online  bool
	version string
}

// New creates the chat model. The monitor is probed lazily through
// tick messages; New itself does no I/O.
func New(theme *styles.Theme, client *backend.Client, monitor *status.Monitor, cfg *config.Config, log zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Ask about a book..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	welcome := components.NewWelcome()
	welcome.BackendURL = cfg.Backend.URL

	session := model.NewSession()
	bar := components.NewStatusBar()
	bar.Session = session.Short()

	return Model{
		state:      StateIdle,
		client:     client,
		monitor:    monitor,
		cfg:        cfg,
		log:        log.With().Str("component", "chat").Logger(),
		transcript: model.NewTranscript(),
		session:    session,
		refIndex:   map[string]int{},
		theme:      theme,
		input:      input,
		spin:       components.NewSpinner(),
		statusBar:  bar,
		welcome:    welcome,
		keys:       DefaultKeyMap(),
	}
}

// SetVersion sets the version string shown on the welcome screen.
func (m *Model) SetVersion(v string) {
	m.version = v
	m.welcome.Version = v
}

// Init starts the connectivity poll loop and the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		CheckHealthCmd(m.monitor),
		StatusTickCmd(m.monitor.Interval()),
	)
}

// Session returns the current session identifier.
func (m Model) Session() string {
	return m.session.ID
}

// Busy reports whether a chat request is outstanding.
func (m Model) Busy() bool {
	return m.state == StateAwaiting
}

// applyTheme rebuilds the style set for the given mode and reflows it
// to the current window.
func (m *Model) applyTheme(mode string) {
	m.theme = styles.NewTheme(mode)
	m.theme.SetSize(m.width, m.height)
}

// rebuildRefs renumbers book references from the given reply text.
func (m *Model) rebuildRefs(replyText string) {
	titles := annotate.Titles(annotate.Transform(replyText))
	if len(titles) > maxNumberedRefs {
		titles = titles[:maxNumberedRefs]
	}
	m.refs = titles
	m.refIndex = make(map[string]int, len(titles))
	for i, t := range titles {
		m.refIndex[t] = i + 1
	}
}
