// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/booky-tui/internal/annotate"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
	"github.com/jeranaias/booky-tui/internal/util"
)

// =============================================================================
// STAR RATING
// =============================================================================

// Star glyphs. ASCII-only so every terminal renders them.
const (
	starFull  = "*"
	starHalf  = "+"
	starEmpty = "-"
)

// StarString returns the bare five-glyph star row for a rating, e.g.
// "****+" for 4.5.
func StarString(value float64) string {
	full, half, empty := annotate.Stars(value)
	var sb strings.Builder
	sb.WriteString(strings.Repeat(starFull, full))
	sb.WriteString(strings.Repeat(starHalf, half))
	sb.WriteString(strings.Repeat(starEmpty, empty))
	return sb.String()
}

// RenderStars renders a styled star row with the numeric value
// alongside, e.g. "****+ 4.5/5".
func RenderStars(theme *styles.Theme, value float64) string {
	return theme.Rating.Render(StarString(value)) + " " +
		theme.Timestamp.Render(util.FloatToString(value)+"/5")
}
