// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/booky-tui/internal/backend"
	"github.com/jeranaias/booky-tui/internal/config"
	"github.com/jeranaias/booky-tui/internal/model"
	"github.com/jeranaias/booky-tui/internal/status"
	"github.com/jeranaias/booky-tui/internal/ui/styles"
)

// newTestModel builds a ready chat model with no live backend. Network
// commands are never executed in these tests; messages are injected
// directly.
func newTestModel(t *testing.T) Model {
	t.Helper()
	client := backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
	})
	monitor := status.NewMonitor(client, time.Minute, zerolog.Nop())
	m := New(styles.NewTheme("dark"), client, monitor, config.Default(), zerolog.Nop())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// submit types content and presses enter.
func submit(m Model, content string) (Model, tea.Cmd) {
	m.input.SetValue(content)
	next, cmd := m.Update(keyMsg("enter"))
	return next.(Model), cmd
}

// TestSubmitStartsTurn tests the idle-to-awaiting transition.
func TestSubmitStartsTurn(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(m, "tell me about Dune")
	if !m.Busy() {
		t.Fatal("model must be awaiting after submit")
	}
	if cmd == nil {
		t.Fatal("submit must produce the send command")
	}

	msgs := m.transcript.Messages()
	last := msgs[len(msgs)-1]
	if !last.IsPending {
		t.Error("transcript must end with the pending placeholder")
	}
	if msgs[len(msgs)-2].Content != "tell me about Dune" {
		t.Error("user message missing from transcript")
	}
}

// TestSubmitWhileBusyIsNoOp tests that a second submission is silently
// dropped while a reply is outstanding.
func TestSubmitWhileBusyIsNoOp(t *testing.T) {
	m := newTestModel(t)

	m, _ = submit(m, "first")
	lenBefore := m.transcript.Len()

	m, cmd := submit(m, "second")
	if cmd != nil {
		t.Error("busy submit must not produce a command")
	}
	if m.transcript.Len() != lenBefore {
		t.Error("busy submit must not touch the transcript")
	}
	if m.input.Value() != "second" {
		t.Error("busy submit must keep the typed input")
	}
}

// TestChatResponseResolvesPending tests the success path: the pending
// placeholder becomes the reply, never a second entry.
func TestChatResponseResolvesPending(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "recommend something")
	lenBefore := m.transcript.Len()

	next, _ := m.Update(ChatResponseMsg{
		SessionID: m.Session(),
		Response:  "Try **Dune** (4.5/5) for $12.99",
		Intent:    "recommend_books",
	})
	m = next.(Model)

	if m.Busy() {
		t.Error("model must be idle after the reply")
	}
	if m.transcript.Len() != lenBefore {
		t.Errorf("reply must resolve in place: len %d, want %d", m.transcript.Len(), lenBefore)
	}
	last := m.transcript.Last()
	if last.IsPending || last.Content != "Try **Dune** (4.5/5) for $12.99" {
		t.Errorf("unexpected last message: %+v", last)
	}
	if last.Intent != "recommend_books" {
		t.Errorf("unexpected intent: %q", last.Intent)
	}
	if len(m.refs) != 1 || m.refs[0] != "Dune" {
		t.Errorf("unexpected refs: %v", m.refs)
	}
}

// TestChatErrorYieldsSingleFallback tests the failure path: exactly one
// fallback message, state back to idle.
func TestChatErrorYieldsSingleFallback(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "hello")
	lenBefore := m.transcript.Len()

	next, _ := m.Update(ChatResponseMsg{
		SessionID: m.Session(),
		Err:       backend.ErrUnreachable,
	})
	m = next.(Model)

	if m.Busy() {
		t.Error("model must be idle after the failure")
	}
	if m.transcript.Len() != lenBefore {
		t.Error("failure must resolve the placeholder, not append")
	}
	last := m.transcript.Last()
	if last.Content != FallbackReply {
		t.Errorf("expected fallback reply, got %q", last.Content)
	}

	// The next submission proceeds normally.
	m, cmd := submit(m, "again")
	if cmd == nil || !m.Busy() {
		t.Error("model must accept input again after a failure")
	}
}

// TestStaleResponseDropped tests that a reply for an abandoned session
// never reaches the transcript.
func TestStaleResponseDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "hello")

	next, _ := m.Update(ChatResponseMsg{
		SessionID: "sess_gone",
		Response:  "too late",
	})
	m = next.(Model)

	if !m.Busy() {
		t.Error("a stale reply must not change state")
	}
	if p := m.transcript.Pending(); p == nil {
		t.Error("the placeholder must survive a stale reply")
	}
}

// TestNewSessionDropsInFlightReply tests /new during an outstanding
// turn: the old session's reply is ignored when it lands.
func TestNewSessionDropsInFlightReply(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "hello")
	oldSession := m.Session()

	m2, _ := m.handleCommand("/new")
	m = m2.(Model)
	if m.Session() == oldSession {
		t.Fatal("/new must rotate the session id")
	}
	if m.Busy() {
		t.Error("/new must reset to idle")
	}

	next, _ := m.Update(ChatResponseMsg{SessionID: oldSession, Response: "late"})
	m = next.(Model)
	if m.transcript.Len() != 1 {
		t.Errorf("late reply must be dropped; transcript len %d, want greeting only", m.transcript.Len())
	}
}

// TestClearKeepsSession tests that /clear resets the transcript but
// not the session id.
func TestClearKeepsSession(t *testing.T) {
	m := newTestModel(t)
	session := m.Session()

	m, _ = submit(m, "hello")
	next, _ := m.Update(ChatResponseMsg{SessionID: session, Response: "hi"})
	m = next.(Model)

	m2, _ := m.handleCommand("/clear")
	m = m2.(Model)

	if m.Session() != session {
		t.Error("/clear must keep the session id")
	}
	if m.transcript.Len() != 1 {
		t.Errorf("transcript must hold only the greeting, got %d", m.transcript.Len())
	}
}

// TestDigitOpensDetails tests the numbered reference shortcuts.
func TestDigitOpensDetails(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "compare")
	next, _ := m.Update(ChatResponseMsg{
		SessionID: m.Session(),
		Response:  "**1984** and **Dune** are both classics",
	})
	m = next.(Model)

	if len(m.refs) != 2 {
		t.Fatalf("expected 2 refs, got %v", m.refs)
	}

	next, cmd := m.Update(keyMsg("2"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("digit key must start a detail fetch")
	}
	if m.detailSeq != 1 {
		t.Errorf("unexpected generation: %d", m.detailSeq)
	}
}

// TestDetailLastWriteWins tests that a superseded detail response is
// dropped even when it arrives after the winner.
func TestDetailLastWriteWins(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "compare")
	next, _ := m.Update(ChatResponseMsg{
		SessionID: m.Session(),
		Response:  "**1984** and **Dune**",
	})
	m = next.(Model)

	// Two rapid requests: 1984 (seq 1) then Dune (seq 2).
	next, _ = m.Update(keyMsg("1"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("2"))
	m = next.(Model)

	// The newer response lands first and wins.
	next, _ = m.Update(BookDetailMsg{Seq: 2, Title: "Dune", Detail: &backend.BookDetail{Title: "Dune"}})
	m = next.(Model)
	if !m.showDetail || m.detailCard.Detail.Title != "Dune" {
		t.Fatal("winning detail response must open the modal")
	}

	// The slow superseded response must not replace it.
	next, _ = m.Update(BookDetailMsg{Seq: 1, Title: "1984", Detail: &backend.BookDetail{Title: "1984"}})
	m = next.(Model)
	if m.detailCard.Detail.Title != "Dune" {
		t.Error("superseded detail response must be dropped")
	}
}

// TestDetailNotFound tests the missing-title notice.
func TestDetailNotFound(t *testing.T) {
	m := newTestModel(t)
	m2, _ := m.handleCommand("/details Atlantis")
	m = m2.(Model)

	next, _ := m.Update(BookDetailMsg{Seq: m.detailSeq, Title: "Atlantis", Err: backend.ErrNotFound})
	m = next.(Model)

	if m.showDetail {
		t.Error("not-found must not open the modal")
	}
	last := m.transcript.Last()
	if last == nil || last.Intent != "details_missing" {
		t.Errorf("expected a details_missing notice, got %+v", last)
	}
}

// TestDetailFetchShowsIndicator tests that opening details raises the
// spinner and the winning response lowers it.
func TestDetailFetchShowsIndicator(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "compare")
	next, _ := m.Update(ChatResponseMsg{
		SessionID: m.Session(),
		Response:  "**Dune** is a classic",
	})
	m = next.(Model)

	next, cmd := m.Update(keyMsg("1"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("digit key must start a detail fetch")
	}
	if !m.spin.Active() {
		t.Error("detail fetch must raise the spinner")
	}

	next, _ = m.Update(BookDetailMsg{Seq: m.detailSeq, Title: "Dune", Detail: &backend.BookDetail{Title: "Dune"}})
	m = next.(Model)
	if m.spin.Active() {
		t.Error("detail response must lower the spinner")
	}
	if !m.showDetail {
		t.Error("detail response must open the modal")
	}
}

// TestDetailErrorLowersIndicator tests that a failed fetch also stops
// the spinner.
func TestDetailErrorLowersIndicator(t *testing.T) {
	m := newTestModel(t)
	m2, _ := m.handleCommand("/details Atlantis")
	m = m2.(Model)
	if !m.spin.Active() {
		t.Fatal("detail fetch must raise the spinner")
	}

	next, _ := m.Update(BookDetailMsg{Seq: m.detailSeq, Title: "Atlantis", Err: backend.ErrNotFound})
	m = next.(Model)
	if m.spin.Active() {
		t.Error("failed detail fetch must lower the spinner")
	}
}

// TestClearMidTurnResetsState tests /clear while a reply is
// outstanding: the model returns to idle and the orphaned reply changes
// nothing when it lands.
func TestClearMidTurnResetsState(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(m, "hello")
	session := m.Session()

	m2, _ := m.handleCommand("/clear")
	m = m2.(Model)
	if m.Busy() {
		t.Fatal("/clear must reset to idle")
	}
	if m.spin.Active() {
		t.Error("/clear must stop the spinner")
	}

	lenBefore := m.transcript.Len()
	next, _ := m.Update(ChatResponseMsg{
		SessionID: session,
		Response:  "**Dune** arrives too late",
	})
	m = next.(Model)
	if m.transcript.Len() != lenBefore {
		t.Error("reply with no placeholder must not append")
	}
	if len(m.refs) != 0 {
		t.Errorf("reply with no placeholder must not rebuild refs, got %v", m.refs)
	}
}

// TestThemeCommand tests /theme switching and rejection of unknown
// modes.
func TestThemeCommand(t *testing.T) {
	m := newTestModel(t)

	m2, cmd := m.handleCommand("/theme light")
	m = m2.(Model)
	if m.cfg.UI.Theme != "light" {
		t.Errorf("config theme not updated: %q", m.cfg.UI.Theme)
	}
	if m.theme.IsDark {
		t.Error("/theme light must rebuild a light theme")
	}
	if cmd == nil {
		t.Error("/theme must persist the choice")
	}

	m2, cmd = m.handleCommand("/theme zebra")
	m = m2.(Model)
	if m.cfg.UI.Theme != "light" {
		t.Error("unknown mode must leave the config untouched")
	}
	if cmd != nil {
		t.Error("unknown mode must not persist anything")
	}
	if last := m.transcript.Last(); last == nil || last.Intent != "help" {
		t.Error("unknown mode must print usage")
	}
}

// TestConfigReloadAppliesChanges tests that a reloaded file repoints
// the client and restyles the view.
func TestConfigReloadAppliesChanges(t *testing.T) {
	m := newTestModel(t)

	reloaded := config.Default()
	reloaded.Backend.URL = "http://elsewhere:9000"
	reloaded.UI.Theme = "light"

	next, cmd := m.Update(ConfigReloadedMsg{Config: reloaded})
	m = next.(Model)

	if m.client.BaseURL() != "http://elsewhere:9000" {
		t.Errorf("client must follow the reloaded URL, got %q", m.client.BaseURL())
	}
	if m.theme.IsDark {
		t.Error("reloaded theme must apply")
	}
	if m.welcome.BackendURL != "http://elsewhere:9000" {
		t.Error("welcome screen must show the reloaded URL")
	}
	if cmd == nil {
		t.Error("reload must trigger a fresh connectivity check")
	}
}

// TestEscClosesModal tests modal dismissal.
func TestEscClosesModal(t *testing.T) {
	m := newTestModel(t)
	m.showDetail = true

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.showDetail {
		t.Error("esc must close the modal")
	}
}

// TestBackendStatusUpdatesBar tests connectivity wiring.
func TestBackendStatusUpdatesBar(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(BackendStatusMsg{Online: true})
	m = next.(Model)
	if !m.online || !m.statusBar.Online {
		t.Error("online verdict must reach the status bar")
	}

	next, _ = m.Update(BackendStatusMsg{Online: false})
	m = next.(Model)
	if m.online || m.statusBar.Online {
		t.Error("offline verdict must reach the status bar")
	}
}

// TestGreetingSeed tests that a fresh model greets as Booky.
func TestGreetingSeed(t *testing.T) {
	m := newTestModel(t)
	msgs := m.transcript.Messages()
	if len(msgs) != 1 || msgs[0].Role != model.RoleBot {
		t.Fatalf("expected a single greeting, got %d messages", len(msgs))
	}
	if msgs[0].Content != model.Greeting {
		t.Error("greeting content mismatch")
	}
}
