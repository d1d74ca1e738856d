// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// search.go - Catalog search command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/ui/components"
	"github.com/jeranaias/booky-tui/internal/util"
)

// RunSearch executes a one-shot catalog search and prints the results.
func RunSearch(client *backend.Client, cfg *config.Config, log zerolog.Logger, args Args) int {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "usage: booky search \"query\"")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	resp, err := client.Search(ctx, args.Query, cfg.Chat.MaxSearchResults)
	if err != nil {
		log.Error().Err(err).Str("query", args.Query).Msg("search failed")
		if args.JSON {
			NewJSONErrorResponse("search", err).Print()
		} else {
			fmt.Fprintln(os.Stderr, askErrorText(err))
		}
		return 1
	}

	if args.JSON {
		if err := NewJSONResponse("search", resp).Print(); err != nil {
			return 1
		}
		return 0
	}

	printSearchResults(resp)
	return 0
}

// printSearchResults renders search results as a numbered list.
func printSearchResults(resp *backend.SearchResponse) {
	if len(resp.Books) == 0 {
		fmt.Printf("%s No books found for %q\n",
			warningStyle.Render("[No results]"), resp.Query)
		return
	}

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render(fmt.Sprintf("Results for %q", resp.Query)))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 25)))
	fmt.Println()

	for i, book := range resp.Books {
		line := fmt.Sprintf("  %2d. %s", i+1, commandStyle.Render(book.Title))
		if len(book.Authors) > 0 {
			line += infoStyle.Render(" by " + strings.Join(book.Authors, ", "))
		}
		fmt.Println(line)

		var meta []string
		if book.AverageRating > 0 {
			meta = append(meta, components.StarString(book.AverageRating)+" "+
				util.FloatToString(book.AverageRating)+"/5")
		}
		if book.PublishedYear > 0 {
			meta = append(meta, util.IntToString(book.PublishedYear))
		}
		if book.Source != "" {
			meta = append(meta, book.Source)
		}
		if len(meta) > 0 {
			fmt.Println(infoStyle.Render("      " + strings.Join(meta, " | ")))
		}
	}

	fmt.Println()
	if resp.TotalResults > len(resp.Books) {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Showing %d of %d matches",
			len(resp.Books), resp.TotalResults)))
		fmt.Println()
	}
}
