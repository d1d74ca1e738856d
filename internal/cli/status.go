// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend health probe command.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// statusProbeTimeout bounds the health probe independently of the chat
// timeout so "booky status" answers quickly against a dead backend.
const statusProbeTimeout = 5 * time.Second

// countPrinter formats book counts with thousands separators.
var countPrinter = message.NewPrinter(language.English)

// RunStatus probes the backend and reports its health.
func RunStatus(client *backend.Client, cfg *config.Config, log zerolog.Logger, args Args) int {
	ctx, cancel := context.WithTimeout(context.Background(), statusProbeTimeout)
	defer cancel()

	start := time.Now()
	health, err := client.Health(ctx)
	latency := time.Since(start)

	data := StatusData{
		Backend:   client.BaseURL(),
		LatencyMs: latency.Milliseconds(),
	}
	if err == nil {
		data.Online = health.Healthy()
		data.Status = health.Status
		data.DatasetLoaded = health.DatasetLoaded
		data.GoogleBooks = health.GoogleBooksAvailable
		data.TotalBooks = health.TotalBooks
	}

	if args.JSON {
		if err != nil {
			NewJSONErrorResponse("status", err).Print()
			return 1
		}
		NewJSONResponse("status", data).Print()
		if !data.Online {
			return 1
		}
		return 0
	}

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Backend Status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Endpoint:"),
		commandStyle.Render(client.BaseURL()))

	if err != nil {
		log.Warn().Err(err).Msg("health probe failed")
		fmt.Printf("  %s\n", styles.RenderError("Unreachable"))
		fmt.Println()
		fmt.Println(infoStyle.Render("Start the backend, then retry. (BOOKY_BACKEND_URL overrides the endpoint.)"))
		fmt.Println()
		return 1
	}

	fmt.Printf("  %s\n", styles.RenderStatus(health.Healthy(), statusWord(health)))
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Latency:"),
		latency.Round(time.Millisecond).String())
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Dataset:"),
		loadedWord(health.DatasetLoaded, countPrinter.Sprintf("%d books", health.TotalBooks)))
	fmt.Printf("  %s %s\n",
		infoStyle.Render("Google Books:"),
		availableWord(health.GoogleBooksAvailable))
	fmt.Println()

	if !health.Healthy() {
		return 1
	}
	return 0
}

func statusWord(h *backend.HealthStatus) string {
	if h.Healthy() {
		return "Healthy"
	}
	if h.Status != "" {
		return "Degraded (" + h.Status + ")"
	}
	return "Degraded"
}

func loadedWord(loaded bool, detail string) string {
	if loaded {
		return commandStyle.Render("Loaded") + " " + infoStyle.Render(detail)
	}
	return warningStyle.Render("Not loaded")
}

func availableWord(available bool) string {
	if available {
		return commandStyle.Render("Available")
	}
	return warningStyle.Render("Unavailable")
}
