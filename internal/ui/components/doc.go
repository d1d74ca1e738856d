// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the booky
// TUI.
//
// Components are pure view helpers: they take a *styles.Theme and data,
// and return rendered strings. The chat model composes them; none of
// them talk to the network or hold Bubble Tea state beyond what the
// spinner needs for animation.
//
// Key components:
//
//   - Renderer: annotated reply text (book titles, stars, prices)
//   - StatusBar: connectivity indicator, session info, shortcuts
//   - DetailCard: the book detail modal body
//   - ResultList: /search output
//   - Spinner: awaiting-response animation
//   - Welcome: first-run splash
package components
