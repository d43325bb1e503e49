package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return mm
}

func TestEscCancelsEditing(t *testing.T) {
	m := update(t, NewApp(), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.editing {
		t.Fatal("expected editing after enter")
	}

	// The escape key arrives as "esc".
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Error("expected esc to cancel editing")
	}
	if m.editBuf != "" {
		t.Errorf("expected empty edit buffer, got %q", m.editBuf)
	}
}

func TestEscLeavesResult(t *testing.T) {
	m := update(t, NewApp(), runeKey("s"))
	if m.state != stateResult {
		t.Fatalf("expected result state after solve, got %d", m.state)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateForm {
		t.Errorf("expected form state after esc, got %d", m.state)
	}
}

func TestEscLeavesPresets(t *testing.T) {
	m := update(t, NewApp(), runeKey("p"))
	if m.state != statePresets {
		t.Fatalf("expected presets state, got %d", m.state)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateForm {
		t.Errorf("expected form state after esc, got %d", m.state)
	}
}

func TestSolveInvalidStaysOnForm(t *testing.T) {
	app := NewApp()
	app.params["h"] = 0

	m := update(t, app, runeKey("s"))
	if m.state != stateForm {
		t.Errorf("expected to stay on form, got state %d", m.state)
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}
