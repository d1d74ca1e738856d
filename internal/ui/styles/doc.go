// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the booky TUI.
//
// All colors use Lip Gloss AdaptiveColor so the palette degrades
// gracefully between light and dark terminals. The Theme struct holds
// every configured style; components take a *Theme rather than build
// styles themselves so the whole UI re-skins from one place.
//
// Annotation styles (book titles, star ratings, prices) live here too,
// keyed to the token kinds the annotate package produces.
package styles
