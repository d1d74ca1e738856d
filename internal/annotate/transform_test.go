// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package annotate

import (
	"strings"
	"testing"
)

// TestTransformMixedReply tests tokenization of a reply mixing all three
// annotation kinds with plain text runs between them.
func TestTransformMixedReply(t *testing.T) {
	tokens := Transform("Try **Dune** (4.5/5) for $12.99")

	want := []Token{
		{Kind: KindText, Text: "Try "},
		{Kind: KindBookRef, Text: "**Dune**", Title: "Dune"},
		{Kind: KindText, Text: " ("},
		{Kind: KindRating, Text: "4.5/5", Value: 4.5},
		{Kind: KindText, Text: ") for "},
		{Kind: KindPrice, Text: "$12.99", Amount: "12.99"},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("token %d: got %+v, want %+v", i, tokens[i], w)
		}
	}
}

// TestTransformPatterns tests each annotation pattern in isolation plus
// the degenerate inputs.
func TestTransformPatterns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty_input",
			input: "",
			want:  nil,
		},
		{
			name:  "plain_text_only",
			input: "I don't know that one.",
			want:  []Token{{Kind: KindText, Text: "I don't know that one."}},
		},
		{
			name:  "book_ref_only",
			input: "**The Hobbit**",
			want:  []Token{{Kind: KindBookRef, Text: "**The Hobbit**", Title: "The Hobbit"}},
		},
		{
			name:  "integer_rating",
			input: "rated 4/5",
			want: []Token{
				{Kind: KindText, Text: "rated "},
				{Kind: KindRating, Text: "4/5", Value: 4},
			},
		},
		{
			name:  "price_without_cents",
			input: "only $15 today",
			want: []Token{
				{Kind: KindText, Text: "only "},
				{Kind: KindPrice, Text: "$15", Amount: "15"},
				{Kind: KindText, Text: " today"},
			},
		},
		{
			name:  "price_with_cents",
			input: "$19.99",
			want:  []Token{{Kind: KindPrice, Text: "$19.99", Amount: "19.99"}},
		},
		{
			name:  "adjacent_annotations",
			input: "**Dune**4/5",
			want: []Token{
				{Kind: KindBookRef, Text: "**Dune**", Title: "Dune"},
				{Kind: KindRating, Text: "4/5", Value: 4},
			},
		},
		{
			name:  "multiple_book_refs",
			input: "**Dune** and **1984**",
			want: []Token{
				{Kind: KindBookRef, Text: "**Dune**", Title: "Dune"},
				{Kind: KindText, Text: " and "},
				{Kind: KindBookRef, Text: "**1984**", Title: "1984"},
			},
		},
		{
			name:  "unterminated_marker_is_text",
			input: "**Dune and more",
			want:  []Token{{Kind: KindText, Text: "**Dune and more"}},
		},
		{
			name:  "price_takes_first_two_cent_digits",
			input: "$5.999",
			want: []Token{
				{Kind: KindPrice, Text: "$5.99", Amount: "5.99"},
				{Kind: KindText, Text: "9"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], w)
				}
			}
		})
	}
}

// TestTransformOverlapPriority tests that a rating-like or price-like
// fragment inside a book title stays part of the book reference.
func TestTransformOverlapPriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []Kind
	}{
		{
			name:  "rating_inside_title",
			input: "**Catch 4/5**",
			kinds: []Kind{KindBookRef},
		},
		{
			name:  "price_inside_title",
			input: "**The $64 Question** is odd",
			kinds: []Kind{KindBookRef, KindText},
		},
		{
			name:  "rating_beats_price_on_overlap",
			input: "$4.5/5",
			kinds: []Kind{KindText, KindRating},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.input)
			if len(got) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.kinds), got)
			}
			for i, k := range tt.kinds {
				if got[i].Kind != k {
					t.Errorf("token %d: got kind %s, want %s", i, got[i].Kind, k)
				}
			}
		})
	}
}

// TestTransformRoundTrip tests that concatenating token texts reproduces
// the input byte for byte.
func TestTransformRoundTrip(t *testing.T) {
	inputs := []string{
		"Try **Dune** (4.5/5) for $12.99",
		"**A** $1 2/5 **B** text $3.50 tail",
		"no annotations at all",
		"$4.5/5 edge",
	}

	for _, in := range inputs {
		var sb strings.Builder
		for _, tok := range Transform(in) {
			sb.WriteString(tok.Text)
		}
		if sb.String() != in {
			t.Errorf("round trip mismatch: got %q, want %q", sb.String(), in)
		}
	}
}

// TestTitles tests distinct title extraction in first-appearance order.
func TestTitles(t *testing.T) {
	tokens := Transform("**Dune**, **1984**, and **Dune** again")
	titles := Titles(tokens)

	if len(titles) != 2 || titles[0] != "Dune" || titles[1] != "1984" {
		t.Errorf("got %v, want [Dune 1984]", titles)
	}
}

// TestStars tests half-star decomposition and range clamping.
func TestStars(t *testing.T) {
	tests := []struct {
		name             string
		value            float64
		full, half, empty int
	}{
		{name: "zero", value: 0, full: 0, half: 0, empty: 5},
		{name: "half_way", value: 2.5, full: 2, half: 1, empty: 2},
		{name: "four_and_a_half", value: 4.5, full: 4, half: 1, empty: 0},
		{name: "perfect", value: 5, full: 5, half: 0, empty: 0},
		{name: "below_half_rounds_down", value: 3.4, full: 3, half: 0, empty: 2},
		{name: "clamp_above_five", value: 9, full: 5, half: 0, empty: 0},
		{name: "clamp_negative", value: -1, full: 0, half: 0, empty: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full, half, empty := Stars(tt.value)
			if full != tt.full || half != tt.half || empty != tt.empty {
				t.Errorf("Stars(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.value, full, half, empty, tt.full, tt.half, tt.empty)
			}
		})
	}
}
