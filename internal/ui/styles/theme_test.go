// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

// TestNewTheme tests that theme construction configures every style
// group without panicking.
func TestNewTheme(t *testing.T) {
	theme := NewTheme("auto")
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check a few styles render without error.
	out := theme.BookTitle.Render("Dune")
	if !strings.Contains(out, "Dune") {
		t.Errorf("BookTitle must preserve text, got %q", out)
	}
	out = theme.StatusOffline.Render("offline")
	if !strings.Contains(out, "offline") {
		t.Errorf("StatusOffline must preserve text, got %q", out)
	}
}

// TestSetSize tests dimension bookkeeping.
func TestSetSize(t *testing.T) {
	theme := NewTheme("auto")
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("got %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

// TestStatusIndicatorsASCII tests that indicators stay ASCII for
// maximum terminal compatibility.
func TestStatusIndicatorsASCII(t *testing.T) {
	for _, s := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Active,
	} {
		for _, r := range s {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", s, r)
			}
		}
	}
}

// TestRenderStatus tests the success/error dispatch.
func TestRenderStatus(t *testing.T) {
	if !strings.Contains(RenderStatus(true, "up"), "[OK]") {
		t.Error("success render must carry [OK] indicator")
	}
	if !strings.Contains(RenderStatus(false, "down"), "[X]") {
		t.Error("error render must carry [X] indicator")
	}
}
