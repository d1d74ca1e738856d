// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
	"github.com/jeranaias/booky-tui/internal/util"
)

// =============================================================================
// BOOK DETAIL CARD
// =============================================================================

// grouped formats large counts with thousands separators, e.g.
// "1,234,567 ratings".
var grouped = message.NewPrinter(language.English)

// DetailCard renders the book detail modal body.
type DetailCard struct {
	Detail *backend.BookDetail
	Width  int
}

// descriptionLimit keeps the modal from swallowing the screen on books
// with page-long blurbs.
const descriptionLimit = 600

// maxDetailReviews caps the reviews shown in the modal; the rest stay
// on the source site.
const maxDetailReviews = 3

// reviewLimit truncates a single review body.
const reviewLimit = 200

// FormatPrice renders an amount with its currency, "$18.99" for USD
// and "18.99 EUR" otherwise.
func FormatPrice(price float64, currency string) string {
	amount := util.FloatToStringPrec(price, 2)
	if currency == "" || currency == "USD" {
		return "$" + amount
	}
	return amount + " " + currency
}

// View renders the card.
func (c *DetailCard) View(theme *styles.Theme) string {
	d := c.Detail
	if d == nil {
		return ""
	}

	var rows []string
	rows = append(rows, theme.DetailTitle.Render(d.Title))

	if author := strings.Join(d.Authors, ", "); author != "" {
		rows = append(rows, c.row(theme, "Author", author))
	}
	if d.PublishedYear > 0 {
		rows = append(rows, c.row(theme, "Published", util.IntToString(d.PublishedYear)))
	}
	if d.Publisher != "" {
		rows = append(rows, c.row(theme, "Publisher", d.Publisher))
	}
	if d.Language != "" {
		rows = append(rows, c.row(theme, "Language", d.Language))
	}
	if len(d.Categories) > 0 {
		rows = append(rows, c.row(theme, "Categories", strings.Join(d.Categories, ", ")))
	}
	if d.AverageRating > 0 {
		rating := RenderStars(theme, d.AverageRating)
		if d.RatingsCount > 0 {
			rating += " " + theme.Timestamp.Render(
				grouped.Sprintf("(%d ratings)", d.RatingsCount))
		}
		rows = append(rows, c.row(theme, "Rating", rating))
	}
	if d.NumPages > 0 {
		rows = append(rows, c.row(theme, "Pages", util.IntToString(d.NumPages)))
	}
	if d.ISBN13 != "" {
		rows = append(rows, c.row(theme, "ISBN-13", d.ISBN13))
	}
	if d.Price > 0 {
		price := theme.Price.Render(FormatPrice(d.Price, d.Currency))
		if d.Availability != "" && d.Availability != "unknown" {
			price += " " + theme.Timestamp.Render("("+d.Availability+")")
		}
		rows = append(rows, c.row(theme, "Price", price))
	}
	if len(d.Sources) > 0 {
		rows = append(rows, c.row(theme, "Sources", strings.Join(d.Sources, ", ")))
	}

	if d.Description != "" {
		desc := util.TruncateRunes(d.Description, descriptionLimit)
		rows = append(rows,
			theme.DetailDivider.Render(strings.Repeat("-", c.innerWidth())),
			theme.DetailValue.Render(desc))
	}

	if len(d.PriceInfo) > 0 {
		rows = append(rows,
			theme.DetailDivider.Render(strings.Repeat("-", c.innerWidth())),
			theme.DetailLabel.Render("Where to buy"))
		for _, offer := range d.PriceInfo {
			line := "  " + theme.DetailValue.Render(util.PadRight(offer.StoreName, 20)) +
				theme.Price.Render(util.PadRight(FormatPrice(offer.Price, offer.Currency), 12))
			if offer.Availability != "" {
				line += theme.Timestamp.Render(offer.Availability)
			}
			rows = append(rows, line)
			if offer.ShippingInfo != "" {
				rows = append(rows, "    "+theme.Timestamp.Render(offer.ShippingInfo))
			}
		}
	}

	if len(d.Reviews) > 0 {
		rows = append(rows,
			theme.DetailDivider.Render(strings.Repeat("-", c.innerWidth())),
			theme.DetailLabel.Render("Reader reviews"))
		shown := d.Reviews
		if len(shown) > maxDetailReviews {
			shown = shown[:maxDetailReviews]
		}
		for _, review := range shown {
			head := "  " + theme.DetailValue.Render(review.ReviewerName)
			if review.Rating > 0 {
				head += " " + RenderStars(theme, review.Rating)
			}
			if review.Source != "" {
				head += " " + theme.Timestamp.Render("via "+review.Source)
			}
			rows = append(rows, head)
			if review.ReviewText != "" {
				rows = append(rows, "    "+theme.DetailValue.Render(
					util.TruncateRunes(review.ReviewText, reviewLimit)))
			}
		}
	}

	if d.InfoURL != "" {
		rows = append(rows, c.row(theme, "More", d.InfoURL))
	}

	rows = append(rows, "", theme.DetailDismiss.Render("esc to close"))

	box := theme.DetailBox
	if c.Width > 0 {
		box = box.Width(c.innerWidth())
	}
	return box.Render(strings.Join(rows, "\n"))
}

func (c *DetailCard) row(theme *styles.Theme, label, value string) string {
	return theme.DetailLabel.Render(label) + theme.DetailValue.Render(value)
}

func (c *DetailCard) innerWidth() int {
	w := c.Width - 8
	if w < 30 {
		w = 30
	}
	return w
}
