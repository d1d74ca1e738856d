// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
	"github.com/jeranaias/booky-tui/internal/util"
)

// =============================================================================
// SEARCH RESULT LIST
// =============================================================================

// ResultList renders /search output as a numbered list. The numbers
// line up with the detail shortcut keys.
type ResultList struct {
	Results *backend.SearchResponse
}

// View renders the list, or a no-results notice.
func (l *ResultList) View(theme *styles.Theme) string {
	r := l.Results
	if r == nil {
		return ""
	}
	if len(r.Books) == 0 {
		return theme.ResultMeta.Render("No books found for \"" + r.Query + "\".")
	}

	var sb strings.Builder
	sb.WriteString(theme.ResultMeta.Render(
		grouped.Sprintf("%d results for \"%s\"", r.TotalResults, r.Query)))
	sb.WriteString("\n")

	for i, b := range r.Books {
		sb.WriteString("\n")
		sb.WriteString(theme.RefBadge.Render("[" + util.IntToString(i+1) + "]"))
		sb.WriteString(" ")
		sb.WriteString(theme.ResultTitle.Render(b.Title))
		if len(b.Authors) > 0 {
			sb.WriteString(theme.ResultAuthor.Render(" by " + strings.Join(b.Authors, ", ")))
		}

		var meta []string
		if b.AverageRating > 0 {
			meta = append(meta, StarString(b.AverageRating)+" "+util.FloatToString(b.AverageRating)+"/5")
		}
		if b.PublishedYear > 0 {
			meta = append(meta, util.IntToString(b.PublishedYear))
		}
		if b.Source != "" {
			meta = append(meta, b.Source)
		}
		if len(meta) > 0 {
			sb.WriteString("\n    ")
			sb.WriteString(theme.ResultMeta.Render(strings.Join(meta, " | ")))
		}
	}
	return sb.String()
}
