// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package annotate

import (
	"regexp"
	"sort"
	"strconv"
)

// =============================================================================
// PATTERNS
// =============================================================================

var (
	// bookRefPattern matches **Title**. Titles never contain an asterisk.
	bookRefPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// ratingPattern matches N/5 where N is an integer or decimal.
	ratingPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)/5`)

	// pricePattern matches $N or $N.NN.
	pricePattern = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
)

// =============================================================================
// TRANSFORM
// =============================================================================

// candidate is a pattern match awaiting overlap resolution.
type candidate struct {
	start, end int
	priority   int // lower wins
	token      Token
}

// Transform scans text and returns the token stream covering it.
//
// Matches are gathered for all three patterns, then accepted in priority
// order (book reference, rating, price); a candidate overlapping an
// already accepted span is dropped. Gaps between accepted matches become
// KindText tokens. An empty input yields an empty slice, and input with
// no annotations yields a single text token.
func Transform(text string) []Token {
	if text == "" {
		return nil
	}

	var cands []candidate
	for _, m := range bookRefPattern.FindAllStringSubmatchIndex(text, -1) {
		cands = append(cands, candidate{
			start:    m[0],
			end:      m[1],
			priority: 0,
			token: Token{
				Kind:  KindBookRef,
				Text:  text[m[0]:m[1]],
				Title: text[m[2]:m[3]],
			},
		})
	}
	for _, m := range ratingPattern.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		cands = append(cands, candidate{
			start:    m[0],
			end:      m[1],
			priority: 1,
			token: Token{
				Kind:  KindRating,
				Text:  text[m[0]:m[1]],
				Value: value,
			},
		})
	}
	for _, m := range pricePattern.FindAllStringSubmatchIndex(text, -1) {
		cands = append(cands, candidate{
			start:    m[0],
			end:      m[1],
			priority: 2,
			token: Token{
				Kind:   KindPrice,
				Text:   text[m[0]:m[1]],
				Amount: text[m[2]:m[3]],
			},
		})
	}

	accepted := resolveOverlaps(cands)

	// Stitch accepted spans and the text between them into one stream.
	tokens := make([]Token, 0, len(accepted)*2+1)
	cursor := 0
	for _, c := range accepted {
		if c.start > cursor {
			tokens = append(tokens, textToken(text[cursor:c.start]))
		}
		tokens = append(tokens, c.token)
		cursor = c.end
	}
	if cursor < len(text) {
		tokens = append(tokens, textToken(text[cursor:]))
	}
	return tokens
}

// resolveOverlaps accepts candidates by priority then position, drops
// anything overlapping an accepted span, and returns the survivors in
// source order.
func resolveOverlaps(cands []candidate) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].priority != cands[j].priority {
			return cands[i].priority < cands[j].priority
		}
		return cands[i].start < cands[j].start
	})

	var accepted []candidate
	for _, c := range cands {
		overlaps := false
		for _, a := range accepted {
			if c.start < a.end && a.start < c.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})
	return accepted
}

// Titles returns the distinct book titles referenced in tokens, in
// first-appearance order. The chat view uses this to number references
// for quick detail lookup.
func Titles(tokens []Token) []string {
	seen := make(map[string]struct{})
	var titles []string
	for _, t := range tokens {
		if t.Kind != KindBookRef {
			continue
		}
		if _, ok := seen[t.Title]; ok {
			continue
		}
		seen[t.Title] = struct{}{}
		titles = append(titles, t.Title)
	}
	return titles
}
