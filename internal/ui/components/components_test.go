// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// TestStarString tests star glyph decomposition.
func TestStarString(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "-----"},
		{name: "half_way", value: 2.5, want: "**+--"},
		{name: "four_and_a_half", value: 4.5, want: "****+"},
		{name: "perfect", value: 5, want: "*****"},
		{name: "clamped", value: 7.2, want: "*****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarString(tt.value); got != tt.want {
				t.Errorf("StarString(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// TestRenderAnnotated tests inline styling of a mixed reply.
func TestRenderAnnotated(t *testing.T) {
	theme := styles.NewTheme("dark")
	out := RenderAnnotated(theme, "Try **Dune** (4.5/5) for $12.99", map[string]int{"Dune": 1})

	// Markers are consumed, the title and badge survive.
	if strings.Contains(out, "**") {
		t.Error("markers must not leak into output")
	}
	for _, want := range []string{"Dune", "[1]", "****+", "4.5/5", "$12.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

// TestRenderAnnotatedNoBadgeWithoutIndex tests that unindexed titles
// render without a badge.
func TestRenderAnnotatedNoBadgeWithoutIndex(t *testing.T) {
	theme := styles.NewTheme("dark")
	out := RenderAnnotated(theme, "**Dune** is a classic", nil)

	if !strings.Contains(out, "Dune") {
		t.Fatalf("title missing: %q", out)
	}
	if strings.Contains(out, "[1]") {
		t.Errorf("unexpected badge: %q", out)
	}
}

// TestStatusBarView tests connectivity wording.
func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme("dark")
	bar := NewStatusBar()
	bar.Width = 100
	bar.Online = true
	bar.State = StatusReady
	bar.Session = "sess_42"

	out := bar.View(theme)
	if !strings.Contains(out, "online") || !strings.Contains(out, "Ready") {
		t.Errorf("unexpected bar: %q", out)
	}

	bar.Online = false
	bar.State = StatusThinking
	out = bar.View(theme)
	if !strings.Contains(out, "offline") || !strings.Contains(out, "Thinking") {
		t.Errorf("unexpected bar: %q", out)
	}
}

// TestDetailCardView tests field selection and grouped ratings counts.
func TestDetailCardView(t *testing.T) {
	theme := styles.NewTheme("dark")
	card := DetailCard{
		Width: 80,
		Detail: &backend.BookDetail{
			Title:         "Dune",
			Authors:       []string{"Frank Herbert"},
			PublishedYear: 1965,
			AverageRating: 4.5,
			RatingsCount:  1234567,
			Description:   "Spice and sandworms.",
			Sources:       []string{"dataset"},
		},
	}

	out := card.View(theme)
	for _, want := range []string{"Dune", "Frank Herbert", "1965", "1,234,567", "****+", "esc to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail card missing %q", want)
		}
	}
}

// TestDetailCardOffersAndReviews tests the store-offer and review
// sections of the modal.
func TestDetailCardOffersAndReviews(t *testing.T) {
	theme := styles.NewTheme("dark")
	card := DetailCard{
		Width: 80,
		Detail: &backend.BookDetail{
			Title:        "Dune",
			Publisher:    "Ace Books",
			Language:     "en",
			Price:        18.99,
			Currency:     "USD",
			Availability: "in_stock",
			PriceInfo: []backend.PriceOffer{
				{StoreName: "Barnes & Noble", Price: 18.99, Currency: "USD",
					Availability: "in_stock", ShippingInfo: "Free over $40"},
				{StoreName: "Book Depot", Price: 15.50, Currency: "EUR"},
			},
			Reviews: []backend.Review{
				{ReviewerName: "Avid Reader", Rating: 5,
					ReviewText: "A masterpiece.", Source: "goodreads"},
			},
		},
	}

	out := card.View(theme)
	for _, want := range []string{
		"Publisher", "Ace Books", "Language",
		"Where to buy", "Barnes & Noble", "$18.99", "Free over $40",
		"Book Depot", "15.50 EUR",
		"Reader reviews", "Avid Reader", "A masterpiece.", "via goodreads",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail card missing %q", want)
		}
	}
}

// TestFormatPrice tests currency placement.
func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		currency string
		want     string
	}{
		{name: "usd_symbol", price: 18.99, currency: "USD", want: "$18.99"},
		{name: "blank_defaults_to_dollar", price: 9.5, currency: "", want: "$9.50"},
		{name: "other_currency_suffix", price: 15.5, currency: "EUR", want: "15.50 EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price, tt.currency); got != tt.want {
				t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.price, tt.currency, got, tt.want)
			}
		})
	}
}

// TestDetailCardSkipsZeroFields tests that absent fields leave no
// empty rows.
func TestDetailCardSkipsZeroFields(t *testing.T) {
	theme := styles.NewTheme("dark")
	card := DetailCard{Detail: &backend.BookDetail{Title: "Mystery"}}

	out := card.View(theme)
	for _, absent := range []string{"Author", "Published", "Rating", "Pages", "ISBN"} {
		if strings.Contains(out, absent) {
			t.Errorf("detail card must omit %q for zero field", absent)
		}
	}
}

// TestResultListView tests numbered search output.
func TestResultListView(t *testing.T) {
	theme := styles.NewTheme("dark")
	list := ResultList{Results: &backend.SearchResponse{
		Query:        "dune",
		TotalResults: 2,
		Books: []backend.Book{
			{Title: "Dune", Authors: []string{"Frank Herbert"}, AverageRating: 4.5},
			{Title: "Dune Messiah", Authors: []string{"Frank Herbert"}},
		},
	}}

	out := list.View(theme)
	for _, want := range []string{"[1]", "Dune", "[2]", "Dune Messiah", "2 results"} {
		if !strings.Contains(out, want) {
			t.Errorf("result list missing %q", want)
		}
	}
}

// TestResultListEmpty tests the no-results notice.
func TestResultListEmpty(t *testing.T) {
	theme := styles.NewTheme("dark")
	list := ResultList{Results: &backend.SearchResponse{Query: "zzz"}}

	if !strings.Contains(list.View(theme), "No books found") {
		t.Error("expected no-results notice")
	}
}

// TestSpinnerLifecycle tests active-state bookkeeping.
func TestSpinnerLifecycle(t *testing.T) {
	theme := styles.NewTheme("dark")
	s := NewSpinner()

	if s.Active() {
		t.Fatal("spinner must start inactive")
	}
	if s.View(theme) != "" {
		t.Error("inactive spinner must render nothing")
	}

	if cmd := s.Start(); cmd == nil {
		t.Error("Start must return the tick command")
	}
	if !s.Active() {
		t.Error("spinner must be active after Start")
	}
	if !strings.Contains(s.View(theme), "Thinking") {
		t.Error("active spinner must show its message")
	}

	s.Stop()
	if s.Active() {
		t.Error("spinner must be inactive after Stop")
	}
}
