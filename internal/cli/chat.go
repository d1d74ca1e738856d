// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive line-mode chat command.
//
// Handles the "booky chat" command which provides an interactive REPL
// for conversing with the book assistant without the full-screen TUI.
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /clear, /c          Clear conversation history
//   /new                Start a fresh session
//   /search QUERY       Search the catalog
//   /details TITLE      Show details for a book
//   /status, /s         Show backend and session status
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/model"
	"github.com/jeranaias/booky-tui/internal/status"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Command style
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// Section header style
	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(styles.Cyan).
				Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	c := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history to file with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for an interactive line-mode chat.
type ChatSession struct {
	Session    model.Session
	Transcript *model.Transcript

	Config *config.Config
	Client *backend.Client
	Quiet  bool

	StartTime time.Time
	Turns     int

	InputCLI *ChatCLI
	Log      zerolog.Logger
}

// NewChatSession creates a new line-mode chat session.
func NewChatSession(client *backend.Client, cfg *config.Config, log zerolog.Logger, args Args) *ChatSession {
	return &ChatSession{
		Session:    model.NewSession(),
		Transcript: model.NewTranscript(),
		Config:     cfg,
		Client:     client,
		Quiet:      args.Quiet,
		StartTime:  time.Now(),
		InputCLI:   NewChatCLI(),
		Log:        log,
	}
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// RunChat runs the interactive line-mode chat REPL.
func RunChat(client *backend.Client, monitor *status.Monitor, cfg *config.Config, log zerolog.Logger, args Args) int {
	session := NewChatSession(client, cfg, log, args)
	defer session.InputCLI.Close()

	// Background health polling so /status reports live state.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)
	monitor.Check(ctx)

	if !session.Quiet {
		printWelcome(session, monitor.Online())
	}

	// Main REPL loop using liner for line editing and history.
	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("booky> "))
		if err != nil {
			// Ctrl+C, EOF (Ctrl+D), or a terminal error all end the session.
			fmt.Println()
			printExitSummary(session)
			return 0
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			shouldContinue, err := handleSlashCommand(input, session, monitor)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !shouldContinue {
				printExitSummary(session)
				return 0
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(session)
			return 0
		}

		if err := processMessage(session, monitor, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage sends a message to the backend and prints the reply.
func processMessage(session *ChatSession, monitor *status.Monitor, input string) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Timeout())
	defer cancel()

	session.Transcript.AppendUser(input)
	start := time.Now()

	resp, err := session.Client.Chat(ctx, session.Session.ID, input)
	if err != nil {
		session.Log.Error().Err(err).Msg("chat turn failed")
		if backend.IsTransport(err) {
			monitor.Poke()
			return fmt.Errorf("backend unreachable at %s (booky status)", session.Client.BaseURL())
		}
		return fmt.Errorf("chat failed: %w", err)
	}

	session.Transcript.AppendBot(resp.Response, resp.Intent)
	session.Turns++

	fmt.Println()
	displayResponse(resp.Response)
	fmt.Println()

	if !session.Quiet && resp.Intent != "" {
		fmt.Fprintf(os.Stderr, "%s %s | %s | %s\n",
			infoStyle.Render("[Info]"),
			resp.Intent,
			resp.Source,
			time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (shouldContinue, error) where shouldContinue=false means exit.
func handleSlashCommand(cmd string, session *ChatSession, monitor *status.Monitor) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(cmd, parts[0]))

	switch command {
	case "/help", "/h", "/?":
		printHelp()
		return true, nil

	case "/clear", "/c":
		session.Transcript.Reset()
		fmt.Println(commandStyle.Render("[Conversation cleared]"))
		return true, nil

	case "/new":
		session.Session = model.NewSession()
		session.Transcript.Reset()
		fmt.Printf("%s New session: %s\n",
			commandStyle.Render("[OK]"),
			session.Session.Short())
		return true, nil

	case "/search":
		if rest == "" {
			return true, fmt.Errorf("usage: /search QUERY")
		}
		return true, runSearchInline(session, rest)

	case "/details", "/d":
		if rest == "" {
			return true, fmt.Errorf("usage: /details TITLE")
		}
		return true, runDetailsInline(session, rest)

	case "/status", "/s":
		printStatus(session, monitor)
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	case "/":
		printHelp()
		return true, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// runSearchInline runs a catalog search inside the REPL.
func runSearchInline(session *ChatSession, query string) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Timeout())
	defer cancel()

	resp, err := session.Client.Search(ctx, query, session.Config.Chat.MaxSearchResults)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	printSearchResults(resp)
	return nil
}

// runDetailsInline looks up a single book inside the REPL.
func runDetailsInline(session *ChatSession, title string) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Timeout())
	defer cancel()

	detail, err := session.Client.BookDetails(ctx, title)
	if err != nil {
		if backend.IsNotFound(err) {
			fmt.Printf("%s No book found matching %q\n",
				warningStyle.Render("[Not found]"), title)
			return nil
		}
		return fmt.Errorf("details failed: %w", err)
	}
	printBookDetail(detail)
	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession, online bool) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("booky interactive chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Backend:"),
		commandStyle.Render(session.Client.BaseURL()))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Session:"),
		commandStyle.Render(session.Session.Short()))
	if online {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Status:"),
			commandStyle.Render("Online"))
	} else {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Status:"),
			warningStyle.Render("Offline (replies will fail until the backend is up)"))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Ask about books. Commands: /help, /search, /details, /quit"))
	fmt.Println()
}

// printHelp prints available commands.
func printHelp() {
	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/clear, /c", "Clear conversation history"},
		{"/new", "Start a fresh session"},
		{"/search QUERY", "Search the catalog"},
		{"/details TITLE", "Show details for a book"},
		{"/status, /s", "Show backend and session status"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-15s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+D exits"))
	fmt.Println()
}

// printStatus prints backend and session state.
func printStatus(session *ChatSession, monitor *status.Monitor) {
	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Session Status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	fmt.Printf("  %s %s\n",
		infoStyle.Render("Backend:"),
		commandStyle.Render(session.Client.BaseURL()))
	if monitor.Online() {
		fmt.Printf("  %s %s\n",
			infoStyle.Render("Connection:"),
			commandStyle.Render("Online"))
	} else {
		fmt.Printf("  %s %s\n",
			infoStyle.Render("Connection:"),
			errorStyle.Render("Offline"))
	}
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Session:"),
		session.Session.Short())
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Duration:"),
		elapsed.String())
	fmt.Printf("  %s %d turns, %d messages\n",
		infoStyle.Render("History:"),
		session.Turns,
		session.Transcript.Len())

	fmt.Println()
}

// printExitSummary prints the session summary on exit.
func printExitSummary(session *ChatSession) {
	if session.Turns == 0 {
		fmt.Println(infoStyle.Render("Goodbye!"))
		return
	}

	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Session Summary"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Printf("  %s %d\n",
		infoStyle.Render("Turns:"),
		session.Turns)
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Duration:"),
		elapsed.String())

	fmt.Println()
	fmt.Println(infoStyle.Render("Goodbye!"))
}
