// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Greeting is the synthetic bot message a fresh or reset transcript starts
// with. Content mirrors the backend's general-intent welcome.
const Greeting = "Hello! I'm Booky, your book assistant. " +
	"Ask me to search for books, check ratings, compare prices, or recommend something new. " +
	"Try \"Find books by Stephen King\" or \"What's the rating of **Dune**?\""

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered chat history for one client run.
// Insertion order is chronological order. It is append-only apart from
// Reset, and is only ever mutated from the UI update loop (single writer).
type Transcript struct {
	messages []*Message
}

// NewTranscript creates a transcript seeded with the greeting message.
func NewTranscript() *Transcript {
	t := &Transcript{}
	t.Reset()
	return t
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message at the tail. There is no size cap; the transcript
// is unbounded within a single run.
func (t *Transcript) Append(msg *Message) {
	t.messages = append(t.messages, msg)
}

// AppendUser creates and appends a user message.
func (t *Transcript) AppendUser(content string) *Message {
	msg := NewUserMessage(content)
	t.Append(msg)
	return msg
}

// AppendBot creates and appends a completed bot message.
func (t *Transcript) AppendBot(content, intent string) *Message {
	msg := NewBotMessage(content, intent)
	t.Append(msg)
	return msg
}

// AppendPending creates and appends a pending bot placeholder.
func (t *Transcript) AppendPending() *Message {
	msg := NewPendingMessage()
	t.Append(msg)
	return msg
}

// Reset replaces the transcript wholesale with a single greeting entry.
func (t *Transcript) Reset() {
	greeting := NewBotMessage(Greeting, "greet")
	t.messages = []*Message{greeting}
}

// Messages returns the ordered history for display.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Last returns the most recent message, or nil if empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Pending returns the trailing pending placeholder, or nil when the last
// entry is a completed message.
func (t *Transcript) Pending() *Message {
	last := t.Last()
	if last != nil && last.IsPending {
		return last
	}
	return nil
}

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session is the opaque identifier correlating all chat turns in one
// conversation. It is immutable; "new session" replaces it wholesale.
type Session struct {
	ID        string
	CreatedAt time.Time
}
