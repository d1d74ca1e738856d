// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/model"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders bot replies; the backend marks titles up as
// **bold**, which glamour turns into styled terminal text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints a reply, markdown-rendered only on a TTY so
// piped output stays plain.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Println(response)
	}
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// RunAsk sends a single question and prints the reply.
func RunAsk(client *backend.Client, cfg *config.Config, log zerolog.Logger, args Args) int {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "usage: booky ask \"question\"")
		return 1
	}

	session := model.NewSession()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	resp, err := client.Chat(ctx, session.ID, args.Query)
	if err != nil {
		log.Error().Err(err).Msg("ask failed")
		fmt.Fprintln(os.Stderr, askErrorText(err))
		return 1
	}

	displayResponse(resp.Response)
	if args.Verbose && resp.Intent != "" {
		fmt.Fprintf(os.Stderr, "intent: %s  source: %s\n", resp.Intent, resp.Source)
	}
	return 0
}

// askErrorText turns a client error into one actionable line.
func askErrorText(err error) string {
	switch {
	case backend.IsTransport(err):
		return "The book service is unreachable. Is the backend running? (booky status)"
	case backend.IsDecode(err):
		return "The book service sent an unexpected response. Try again."
	default:
		return "Sorry, I encountered an error. Please try again."
	}
}
