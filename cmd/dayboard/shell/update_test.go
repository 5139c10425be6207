// Package shell tests for the Update loop: gate transitions, auth events,
// and panel selection keys.
package shell

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dayboard/internal/auth"
)

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	result := next.(Model)

	if result.width != 120 || result.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", result.width, result.height)
	}
}

func TestUpdate_BlockedBootResult(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	next, _ := m.Update(bootResultMsg{result: auth.BootstrapResult{
		Blocked: true,
		Message: "Identity provider is not configured.",
	}})
	result := next.(Model)

	if !result.blocked {
		t.Fatalf("expected blocked state")
	}
	if result.ready {
		t.Errorf("readiness must never become true when blocked")
	}
	if result.statusMessage != "Identity provider is not configured." {
		t.Errorf("blocked message not retained: %q", result.statusMessage)
	}
}

func TestUpdate_FirstAuthEventOpensGate(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	if m.session != nil {
		t.Fatalf("session identity must be nil before readiness")
	}

	next, cmd := m.Update(authEventMsg(auth.State{
		Session: &auth.Session{UID: "user-9", Expiry: time.Now().Add(time.Hour)},
	}))
	result := next.(Model)

	if !result.ready {
		t.Fatalf("first auth event must set readiness")
	}
	if result.session == nil || result.session.UID != "user-9" {
		t.Errorf("session identity not set from sign-in event")
	}
	if cmd == nil {
		t.Errorf("expected the auth-event pump to be re-armed")
	}
}

func TestUpdate_FailedAuthEventStillOpensGate(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	next, _ := m.Update(authEventMsg(auth.State{}))
	result := next.(Model)

	if !result.ready {
		t.Fatalf("readiness must become true on a definitive failure too")
	}
	if result.session != nil {
		t.Errorf("session must stay nil after a failed sign-in")
	}
}

func TestUpdate_SignOutEventClearsSession(t *testing.T) {
	t.Parallel()
	m := NewTestModel(WithReady())
	m.session = &auth.Session{UID: "user-9"}

	next, _ := m.Update(authEventMsg(auth.State{}))
	result := next.(Model)

	if result.session != nil {
		t.Errorf("session must be cleared on a signed-out event")
	}
	if !result.ready {
		t.Errorf("readiness is permanent once set")
	}
}

func TestUpdate_TabCyclesPanels(t *testing.T) {
	t.Parallel()
	m := NewTestModel(WithReady())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	result := next.(Model)
	if result.activePanel != PanelSchedule {
		t.Errorf("expected Schedule after tab, got %v", result.activePanel)
	}

	next, _ = result.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	result = next.(Model)
	if result.activePanel != PanelChat {
		t.Errorf("expected Chat after shift+tab, got %v", result.activePanel)
	}
}

func TestUpdate_NumberKeysSelectPanels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want Panel
	}{
		{"1", PanelChat},
		{"2", PanelSchedule},
		{"3", PanelNotes},
	}
	for _, tc := range cases {
		m := NewTestModel(WithReady())
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)})
		result := next.(Model)
		if result.activePanel != tc.want {
			t.Errorf("key %q selected %v, want %v", tc.key, result.activePanel, tc.want)
		}
	}
}

func TestUpdate_PanelKeysIgnoredBeforeReady(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	result := next.(Model)
	if result.activePanel != DefaultPanel {
		t.Errorf("panel selection must be inert while the gate is closed")
	}
}

func TestUpdate_QuitKeysShutDown(t *testing.T) {
	t.Parallel()
	m := NewTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if cmd() != (tea.QuitMsg{}) {
		t.Errorf("expected tea.Quit on ctrl+c")
	}
}
