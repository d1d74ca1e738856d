// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Booky"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single entry in the transcript.
//
// Role and the eventual Content are immutable after creation, with one
// exception: a pending placeholder (IsPending true) is resolved in place
// into a completed bot message. A placeholder and its completion never
// coexist as two entries.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// Intent reported by the dialogue backend for bot messages, if any.
	Intent string `json:"intent,omitempty"`

	// IsPending marks a provisional "assistant is responding" placeholder.
	IsPending bool `json:"-"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewBotMessage creates a completed bot message with its reported intent.
func NewBotMessage(content, intent string) *Message {
	msg := NewMessage(RoleBot, content)
	msg.Intent = intent
	return msg
}

// NewPendingMessage creates a provisional bot placeholder shown while a
// response is in flight.
func NewPendingMessage() *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleBot,
		Timestamp: time.Now(),
		IsPending: true,
	}
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Resolve transitions a pending placeholder into a completed bot message.
// Calling Resolve on a non-pending message is a no-op.
func (m *Message) Resolve(content, intent string) {
	if !m.IsPending {
		return
	}
	m.Content = content
	m.Intent = intent
	m.Timestamp = time.Now()
	m.IsPending = false
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// DisplayTime formats the timestamp for transcript display.
func (m *Message) DisplayTime() string {
	return m.Timestamp.Format("15:04")
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
