// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package annotate turns raw backend reply text into a flat token stream
// the renderers can style.
//
// The backend marks up replies with three inline patterns: book titles
// wrapped in double asterisks (**Dune**), ratings on a five-point scale
// (4.5/5), and dollar prices ($12.99). Transform scans a reply once,
// left to right, and produces a slice of tokens that alternate between
// plain text runs and recognized annotations. Overlapping candidates are
// resolved by priority: book reference, then rating, then price. The
// concatenated token texts always reproduce the input exactly, so a
// renderer that ignores annotations loses nothing.
package annotate
