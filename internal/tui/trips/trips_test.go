// ABOUTME: Tests for the trip list screen
// ABOUTME: Covers filtering, selection, and loading/error states

package trips

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/client"
)

func sampleTrips() []client.Trip {
	return []client.Trip{
		{ID: 1, DestinationCity: "Cairo", DestinationCountry: "Egypt", StartDate: "2026-10-01", EndDate: "2026-10-08"},
		{ID: 2, DestinationCity: "Tokyo", DestinationCountry: "Japan", StartDate: "2026-11-01", EndDate: "2026-11-05"},
		{ID: 3, DestinationCity: "Kyoto", DestinationCountry: "Japan", StartDate: "2026-12-01", EndDate: "2026-12-03"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoadingState(t *testing.T) {
	m := New()
	if !strings.Contains(m.View(), "Loading trips") {
		t.Error("expected loading placeholder before data arrives")
	}
}

func TestSetTrips_RendersAll(t *testing.T) {
	m := New()
	m.SetTrips(sampleTrips())

	view := m.View()
	for _, city := range []string{"Cairo", "Tokyo", "Kyoto"} {
		if !strings.Contains(view, city) {
			t.Errorf("expected %s in view", city)
		}
	}
}

func TestEmptyState(t *testing.T) {
	m := New()
	m.SetTrips(nil)

	if !strings.Contains(m.View(), "No trips yet") {
		t.Error("expected empty state prompt")
	}
}

func TestErrorState_RetryHint(t *testing.T) {
	m := New()
	m.SetError("Server error. Please try again later.")

	view := m.View()
	if !strings.Contains(view, "Server error") {
		t.Error("expected error message in view")
	}
	if !strings.Contains(view, "r to retry") {
		t.Error("expected retry hint in view")
	}

	_, cmd := m.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if _, ok := cmd().(RefreshMsg); !ok {
		t.Errorf("expected RefreshMsg, got %T", cmd())
	}
}

func TestFilter_MatchesCountryAndCity(t *testing.T) {
	m := New()
	m.SetTrips(sampleTrips())

	m.Update(keyMsg("/"))
	typeString(m, "japan")

	if len(m.filtered) != 2 {
		t.Fatalf("expected 2 trips matching japan, got %d", len(m.filtered))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	view := m.View()
	if strings.Contains(view, "Cairo") {
		t.Error("expected Cairo filtered out")
	}
	if !strings.Contains(view, "2 of 3 trips") {
		t.Errorf("expected filter count, got %q", view)
	}
}

func TestFilter_CaseInsensitiveCity(t *testing.T) {
	m := New()
	m.SetTrips(sampleTrips())

	m.Update(keyMsg("/"))
	typeString(m, "KYO")

	// Tokyo and Kyoto both contain "kyo"
	if len(m.filtered) != 2 {
		t.Errorf("expected 2 matches for KYO, got %d", len(m.filtered))
	}
}

func TestOpenTrip(t *testing.T) {
	m := New()
	m.SetTrips(sampleTrips())

	m.Update(keyMsg("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected open command")
	}

	msg, ok := cmd().(OpenMsg)
	if !ok {
		t.Fatalf("expected OpenMsg, got %T", cmd())
	}
	if msg.ID != 2 {
		t.Errorf("expected trip 2, got %d", msg.ID)
	}
}

func TestNewTripShortcut(t *testing.T) {
	m := New()
	m.SetTrips(nil)

	_, cmd := m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(NewMsg); !ok {
		t.Errorf("expected NewMsg, got %T", cmd())
	}
}

func TestBack(t *testing.T) {
	m := New()
	m.SetTrips(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Errorf("expected BackMsg, got %T", cmd())
	}
}
