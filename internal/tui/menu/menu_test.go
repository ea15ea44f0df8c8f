// ABOUTME: Tests for the home menu
// ABOUTME: Verifies navigation, selection, and admin gating

package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelect_FirstEntry(t *testing.T) {
	m := New(false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}

	msg, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", cmd())
	}
	if msg.Item != ItemTrips {
		t.Errorf("expected trips, got %d", msg.Item)
	}
}

func TestSelect_DisabledAdminEntry(t *testing.T) {
	m := New(false)

	// Move the cursor onto the traveler directory entry
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("j"))
	}
	if m.options[m.cursor].value != ItemTravelers {
		t.Fatalf("cursor not on travelers entry, got %d", m.options[m.cursor].value)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for a disabled entry")
	}
}

func TestSelect_AdminEntryEnabled(t *testing.T) {
	m := New(true)

	for i := 0; i < 3; i++ {
		m.Update(keyMsg("j"))
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command for admin")
	}
	msg := cmd().(SelectedMsg)
	if msg.Item != ItemTravelers {
		t.Errorf("expected travelers, got %d", msg.Item)
	}
}

func TestCancel(t *testing.T) {
	m := New(false)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestCursorBounds(t *testing.T) {
	m := New(false)

	m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor must not move above the first entry, got %d", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m.Update(keyMsg("j"))
	}
	if m.cursor != len(m.options)-1 {
		t.Errorf("cursor must stop at the last entry, got %d", m.cursor)
	}
}

func TestView_MarksAdminOnlyEntry(t *testing.T) {
	m := New(false)
	view := m.View()
	if !strings.Contains(view, "(admin only)") {
		t.Error("expected disabled directory entry to be marked admin only")
	}

	admin := New(true)
	if strings.Contains(admin.View(), "(admin only)") {
		t.Error("admin menu must not mark the directory as admin only")
	}
}
