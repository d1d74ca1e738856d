// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// details.go - Single-book lookup command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/ui/components"
	"github.com/jeranaias/booky-tui/internal/util"
)

// grouped formats large counts with thousands separators.
var grouped = message.NewPrinter(language.English)

// RunDetails looks up one title and prints the merged record.
func RunDetails(client *backend.Client, cfg *config.Config, log zerolog.Logger, args Args) int {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "usage: booky details \"title\"")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	detail, err := client.BookDetails(ctx, args.Query)
	if err != nil {
		log.Error().Err(err).Str("title", args.Query).Msg("details failed")
		if args.JSON {
			NewJSONErrorResponse("details", err).Print()
			return 1
		}
		if backend.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "%s No book found matching %q\n",
				warningStyle.Render("[Not found]"), args.Query)
		} else {
			fmt.Fprintln(os.Stderr, askErrorText(err))
		}
		return 1
	}

	if args.JSON {
		if err := NewJSONResponse("details", detail).Print(); err != nil {
			return 1
		}
		return 0
	}

	printBookDetail(detail)
	return 0
}

// printBookDetail renders a merged book record as labelled rows.
func printBookDetail(d *backend.BookDetail) {
	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render(d.Title))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 25)))
	fmt.Println()

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Printf("  %s %s\n",
			infoStyle.Render(fmt.Sprintf("%-11s", label)),
			value)
	}

	if len(d.Authors) > 0 {
		row("Author:", strings.Join(d.Authors, ", "))
	}
	if len(d.Categories) > 0 {
		row("Category:", strings.Join(d.Categories, ", "))
	}
	if d.AverageRating > 0 {
		rating := components.StarString(d.AverageRating) + " " +
			util.FloatToString(d.AverageRating) + "/5"
		if d.RatingsCount > 0 {
			rating += " " + grouped.Sprintf("(%d ratings)", d.RatingsCount)
		}
		row("Rating:", rating)
	}
	if d.PublishedYear > 0 {
		row("Published:", util.IntToString(d.PublishedYear))
	}
	row("Publisher:", d.Publisher)
	row("Language:", d.Language)
	if d.NumPages > 0 {
		row("Pages:", grouped.Sprintf("%d", d.NumPages))
	}
	if d.Price > 0 {
		price := components.FormatPrice(d.Price, d.Currency)
		if d.Availability != "" && d.Availability != "unknown" {
			price += " (" + d.Availability + ")"
		}
		row("Price:", price)
	}
	row("ISBN-13:", d.ISBN13)
	row("ISBN-10:", d.ISBN10)
	if len(d.Sources) > 0 {
		row("Sources:", strings.Join(d.Sources, ", "))
	}
	row("Preview:", d.PreviewURL)

	if d.Description != "" {
		fmt.Println()
		fmt.Println(infoStyle.Render("  " + util.TruncateRunes(d.Description, 600)))
	}

	if len(d.PriceInfo) > 0 {
		fmt.Println()
		fmt.Println(summaryHeaderStyle.Render("  Where to buy"))
		for _, offer := range d.PriceInfo {
			line := fmt.Sprintf("  %s %s",
				util.PadRight(offer.StoreName, 22),
				util.PadRight(components.FormatPrice(offer.Price, offer.Currency), 12))
			if offer.Availability != "" {
				line += infoStyle.Render(offer.Availability)
			}
			fmt.Println(line)
			if offer.ShippingInfo != "" {
				fmt.Println(infoStyle.Render("    " + offer.ShippingInfo))
			}
		}
	}

	if len(d.Reviews) > 0 {
		fmt.Println()
		fmt.Println(summaryHeaderStyle.Render("  Reader reviews"))
		for _, review := range d.Reviews {
			head := "  " + review.ReviewerName
			if review.Rating > 0 {
				head += " " + components.StarString(review.Rating)
			}
			if review.Source != "" {
				head += infoStyle.Render(" via " + review.Source)
			}
			if review.ReviewDate != "" {
				head += infoStyle.Render(" (" + review.ReviewDate + ")")
			}
			fmt.Println(head)
			if review.ReviewText != "" {
				fmt.Println("    " + util.TruncateRunes(review.ReviewText, 200))
			}
		}
	}

	fmt.Println()
}
