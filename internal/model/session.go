// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewSession creates a session with a fresh opaque identifier.
//
// The id combines a timestamp with a random suffix so it is unique per
// process run with overwhelming probability. There is no cryptographic
// requirement; the backend treats it as an opaque correlation token.
func NewSession() Session {
	now := time.Now()
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return Session{
		ID:        "sess_" + strconv.FormatInt(now.UnixNano(), 10) + "_" + suffix,
		CreatedAt: now,
	}
}

// Short returns a compact form of the id for status lines.
func (s Session) Short() string {
	const keep = 12
	runes := []rune(s.ID)
	if len(runes) <= keep {
		return s.ID
	}
	return string(runes[:keep]) + "…"
}
