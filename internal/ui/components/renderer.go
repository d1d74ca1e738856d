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
// ANNOTATED TEXT RENDERER
// =============================================================================

// RenderAnnotated renders bot reply text with inline annotation
// styling: book titles highlighted (with a numbered badge when refIndex
// assigns one), ratings decomposed into star rows, and prices
// emphasized. Plain text passes through untouched.
func RenderAnnotated(theme *styles.Theme, text string, refIndex map[string]int) string {
	var sb strings.Builder
	for _, tok := range annotate.Transform(text) {
		switch tok.Kind {
		case annotate.KindBookRef:
			sb.WriteString(theme.BookTitle.Render(tok.Title))
			if n, ok := refIndex[tok.Title]; ok {
				sb.WriteString(theme.RefBadge.Render("[" + util.IntToString(n) + "]"))
			}
		case annotate.KindRating:
			sb.WriteString(theme.Rating.Render(StarString(tok.Value)))
			sb.WriteString(" ")
			sb.WriteString(theme.Timestamp.Render(tok.Text))
		case annotate.KindPrice:
			sb.WriteString(theme.Price.Render(tok.Text))
		default:
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}
