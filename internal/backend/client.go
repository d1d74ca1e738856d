// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota

	// ErrTypeTransport covers connection refusals, DNS failures and any
	// other failure to complete the HTTP exchange.
	ErrTypeTransport

	// ErrTypeTimeout is a transport failure caused by a deadline.
	ErrTypeTimeout

	// ErrTypeDecode means the server answered but the body was not the
	// expected JSON shape.
	ErrTypeDecode

	// ErrTypeNotFound means the server has no record for the requested
	// title.
	ErrTypeNotFound
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeTransport, Message: "backend is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNotFound    = &ClientError{Type: ErrTypeNotFound, Message: "book not found"}
)

// IsTransport reports whether err is a transport-level failure,
// including timeouts. The status monitor flips to offline on these.
func IsTransport(err error) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Type == ErrTypeTransport || ce.Type == ErrTypeTimeout
}

// IsDecode reports whether err is a malformed-response failure.
func IsDecode(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeDecode
}

// IsNotFound reports whether err is a missing-title failure.
func IsNotFound(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the API base URL (default: http://localhost:8000)
	BaseURL string

	// Timeout per request (default: 30s)
	Timeout time.Duration

	// SourcePreference forwarded on chat turns (default: empty,
	// server decides)
	SourcePreference string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Booky dialogue API.
//
// The Client is safe for concurrent use. The base URL may be swapped
// at runtime when the configuration file changes.
type Client struct {
	mu         sync.RWMutex
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom
// configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL
}

// SetBaseURL repoints the client at a different backend. A reloaded
// configuration file takes effect on the next request.
func (c *Client) SetBaseURL(url string) {
	if url == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config.BaseURL = url
}

// baseURL reads the current base URL under the lock.
func (c *Client) baseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.BaseURL
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends one user message and returns the server's reply. The
// session ID threads conversation state; pass the same ID for every
// turn of a session.
func (c *Client) Chat(ctx context.Context, sessionID, message string) (*ChatResponse, error) {
	reqBody := ChatRequest{
		Message:          message,
		SessionID:        sessionID,
		SourcePreference: c.config.SourcePreference,
	}

	var result ChatResponse
	if err := c.postJSON(ctx, "/chat", reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// SEARCH
// =============================================================================

// Search queries the catalog by free text. maxResults caps the result
// list; zero lets the server apply its default.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (*SearchResponse, error) {
	reqBody := SearchRequest{
		Query:      query,
		MaxResults: maxResults,
	}

	var result SearchResponse
	if err := c.postJSON(ctx, "/search", reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// BOOK DETAILS
// =============================================================================

// BookDetails fetches the merged record for a single title. Returns
// ErrNotFound when the server has no match.
func (c *Client) BookDetails(ctx context.Context, title string) (*BookDetail, error) {
	var result BookDetail
	if err := c.postJSON(ctx, "/book-details", DetailRequest{Title: title}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// HEALTH
// =============================================================================

// Health checks that the backend is reachable and reports itself
// healthy. Used by the status monitor on its poll cadence.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/health", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeTransport,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	var result HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeDecode, Message: "failed to decode health response", Cause: err}
	}
	return &result, nil
}

// =============================================================================
// TRANSPORT HELPERS
// =============================================================================

// postJSON performs one POST exchange and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &ClientError{Type: ErrTypeDecode, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return &ClientError{
			Type:    ErrTypeTransport,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeDecode, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// transportError classifies a failed HTTP exchange.
func transportError(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return &ClientError{Type: ErrTypeTransport, Message: "backend is unreachable", Cause: err}
}
