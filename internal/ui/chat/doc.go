// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the full-screen conversation view.
//
// The Model is a Bubble Tea model owning the transcript, the input
// line, the connectivity indicator and the book detail modal. All
// network work runs inside tea.Cmd closures; their results come back
// as messages, so the Update loop is the only writer of UI state and
// needs no locks.
//
// # Conversation states
//
// The conversation is either idle or awaiting a reply. Submitting while
// a reply is in flight is a silent no-op; there is never more than one
// chat request outstanding. A reply that arrives for a session other
// than the current one (the user cleared or renewed the conversation
// meanwhile) is dropped.
//
// # Book references
//
// Each bot reply's **Title** references are numbered left to right
// across the transcript's latest reply. Pressing 1-9 fetches details
// for the matching reference; /details <title> works for anything
// older. Detail fetches carry a generation number so a slow response
// never overwrites a newer request's result.
package chat
