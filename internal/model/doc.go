// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript:
// sessions, messages, and the append-only transcript itself.
//
// A Session is an opaque identifier correlating all chat turns in one
// conversation. The Transcript is insertion-ordered and append-only; the
// only non-append operation is Reset, which replaces it wholesale with a
// single greeting entry.
package model
