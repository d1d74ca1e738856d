// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"encoding/json"
	"time"
)

// =============================================================================
// TIMESTAMPS
// =============================================================================

// naiveLayout matches the backend's ISO-8601 timestamps, which carry
// no timezone offset (Python datetime.now() serialized as-is). The
// fractional part is optional.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time.Time that also decodes offset-less ISO-8601
// strings. The stdlib decoder only accepts RFC 3339 and would reject
// every timestamp the backend sends.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// =============================================================================
// CHAT
// =============================================================================

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`

	// SourcePreference selects the lookup source: "dataset", "google",
	// "both" or "ask". Empty lets the server decide.
	SourcePreference string `json:"source_preference,omitempty"`
}

// ChatResponse is the server's reply to a chat turn.
type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp Timestamp `json:"timestamp"`

	// Intent is the classified intent of the user message, if the
	// server reports one (e.g. "search_book", "get_price").
	Intent string `json:"intent,omitempty"`

	// Source attributes the answer to "dataset" or "google_books".
	Source string `json:"source,omitempty"`
}

// =============================================================================
// SEARCH
// =============================================================================

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
	Source     string `json:"source,omitempty"`
}

// SearchResponse lists the books matching a query.
type SearchResponse struct {
	Books        []Book `json:"books"`
	TotalResults int    `json:"total_results"`
	Query        string `json:"query"`
	Source       string `json:"source,omitempty"`
}

// Book is one search result row.
type Book struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Description   string   `json:"description,omitempty"`
	PublishedYear int      `json:"published_year,omitempty"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingsCount  int      `json:"ratings_count,omitempty"`
	NumPages      int      `json:"num_pages,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty"`
	Source        string   `json:"source,omitempty"`
}

// =============================================================================
// BOOK DETAILS
// =============================================================================

// DetailRequest is the body of POST /book-details.
type DetailRequest struct {
	Title string `json:"title"`
}

// BookDetail is the merged record for a single title. The server fills
// gaps in its dataset row from Google Books and store scraping, so any
// field may be zero.
type BookDetail struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Description   string   `json:"description,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	Language      string   `json:"language,omitempty"`
	PublishedYear int      `json:"published_year,omitempty"`
	AverageRating float64  `json:"average_rating,omitempty"`
	RatingsCount  int      `json:"ratings_count,omitempty"`
	NumPages      int      `json:"num_pages,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	ISBN13        string   `json:"isbn13,omitempty"`
	ISBN10        string   `json:"isbn10,omitempty"`
	PreviewURL    string   `json:"preview_url,omitempty"`
	InfoURL       string   `json:"info_url,omitempty"`
	Sources       []string `json:"sources,omitempty"`

	// List price when the record carries one directly.
	Price        float64 `json:"price,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Availability string  `json:"availability,omitempty"`

	// PriceInfo lists per-store offers.
	PriceInfo []PriceOffer `json:"price_info,omitempty"`

	// Reviews lists scraped reader reviews.
	Reviews []Review `json:"reviews,omitempty"`
}

// PriceOffer is one store's offer for a title.
type PriceOffer struct {
	StoreName    string  `json:"store_name"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	Availability string  `json:"availability,omitempty"`
	ShippingInfo string  `json:"shipping_info,omitempty"`
	URL          string  `json:"url,omitempty"`
}

// Review is one reader review attached to a title.
type Review struct {
	ReviewerName string  `json:"reviewer_name"`
	Rating       float64 `json:"rating,omitempty"`
	ReviewText   string  `json:"review_text,omitempty"`
	ReviewDate   string  `json:"review_date,omitempty"`
	Source       string  `json:"source,omitempty"`
}

// Author returns the primary author, or an empty string.
func (d *BookDetail) Author() string {
	if len(d.Authors) == 0 {
		return ""
	}
	return d.Authors[0]
}

// =============================================================================
// HEALTH
// =============================================================================

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status               string    `json:"status"`
	Timestamp            Timestamp `json:"timestamp"`
	Message              string    `json:"message,omitempty"`
	DatasetLoaded        bool      `json:"dataset_loaded"`
	GoogleBooksAvailable bool      `json:"google_books_available"`
	TotalBooks           int       `json:"total_books"`
}

// Healthy reports whether the server declared itself healthy.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
