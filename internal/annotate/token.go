// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package annotate

// =============================================================================
// TOKEN KINDS
// =============================================================================

// Kind identifies what a token represents.
type Kind int

const (
	// KindText is a run of plain text between annotations.
	KindText Kind = iota

	// KindBookRef is a book title the backend wrapped in **...**.
	KindBookRef

	// KindRating is a rating on a five-point scale, e.g. 4.5/5.
	KindRating

	// KindPrice is a dollar amount, e.g. $12.99.
	KindPrice
)

// String returns the token kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBookRef:
		return "bookref"
	case KindRating:
		return "rating"
	case KindPrice:
		return "price"
	default:
		return "unknown"
	}
}

// =============================================================================
// TOKEN TYPE
// =============================================================================

// Token is one segment of an annotated reply.
//
// Text always holds the exact source slice the token covers, markers
// included, so joining the Text of every token reconstructs the input.
// The remaining fields are populated per kind: Title for KindBookRef,
// Value for KindRating, Amount for KindPrice.
type Token struct {
	Kind Kind

	// Text is the source text covered by this token, verbatim.
	Text string

	// Title is the book title without the surrounding markers.
	Title string

	// Value is the parsed rating on the 0-5 scale.
	Value float64

	// Amount is the price without the dollar sign, e.g. "12.99".
	Amount string
}

// textToken wraps a plain run.
func textToken(s string) Token {
	return Token{Kind: KindText, Text: s}
}
