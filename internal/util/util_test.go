// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"tiny max", "hello", 2, "he"},
		{"multibyte safe", "日本語のテキスト", 5, "日本..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TruncateRunes(tc.in, tc.max))
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	// CJK characters occupy two columns each.
	require.Equal(t, "日本...", TruncateWidth("日本語のテキスト", 7))
	require.Equal(t, "plain", TruncateWidth("plain", 10))
	require.Equal(t, "", TruncateWidth("plain", 0))
}

func TestStringWidth(t *testing.T) {
	require.Equal(t, 5, StringWidth("hello"))
	require.Equal(t, 4, StringWidth("日本"))
}

func TestFloatToString(t *testing.T) {
	require.Equal(t, "12.99", FloatToString(12.99))
	require.Equal(t, "4.5", FloatToStringPrec(4.5, 1))
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.toml")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0644))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first", string(data))

	// Overwrite is atomic and leaves no temp files behind.
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0644))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
