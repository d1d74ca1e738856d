// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the Booky dialogue API.
//
// The API exposes four endpoints: POST /chat for conversational turns,
// POST /search for title queries, POST /book-details for a merged
// single-title record, and GET /health for liveness. The client issues
// one plain request per call; retries and polling cadence are the
// caller's concern. Every failure is a *ClientError whose Type feeds
// the connectivity indicator and error handling upstream.
package backend
