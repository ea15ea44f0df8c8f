// ABOUTME: Tests for the trip detail screen
// ABOUTME: Covers analysis triggering, in-flight guarding, and report rendering

package tripdetail

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tripsentry/internal/client"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleTrip() *client.Trip {
	return &client.Trip{
		ID:                 7,
		DestinationCity:    "Cairo",
		DestinationCountry: "Egypt",
		StartDate:          "2026-10-01",
		EndDate:            "2026-10-08",
		Purpose:            "Client meetings",
		Accommodation:      "Hotel on Tahrir Square",
		TransportMode:      "flight",
	}
}

func sampleReport() *client.RiskReport {
	return &client.RiskReport{
		Status: "success",
		Analysis: client.RiskAnalysis{
			TripID:           7,
			Destination:      "Cairo, Egypt",
			OverallRiskScore: 62,
			RiskLevel:        "Medium",
			RiskScoreBreakdown: map[string]float64{
				"health":   40,
				"security": 75,
			},
			TopRisks: []string{"Petty crime near tourist areas"},
			AgentReports: map[string]client.AgentReport{
				"security": {AgentName: "Security Agent", Status: "ok", RiskScore: 75, RiskLevel: "High"},
			},
			ConsolidatedRecommendations: []string{"Register with your embassy"},
			ExecutiveSummary:            "Moderate risk overall.",
		},
		ReportSaved: true,
	}
}

func TestAnalyzeTriggersOnce(t *testing.T) {
	m := New()
	m.SetTrip(sampleTrip())

	_, cmd := m.Update(keyMsg("a"))
	if cmd == nil {
		t.Fatal("expected analyze command")
	}
	msg, ok := cmd().(AnalyzeMsg)
	if !ok {
		t.Fatalf("expected AnalyzeMsg, got %T", cmd())
	}
	if msg.TripID != 7 {
		t.Errorf("expected trip 7, got %d", msg.TripID)
	}
	if !m.Analyzing() {
		t.Error("expected analyzing state after trigger")
	}

	// Repeat presses while in flight are ignored
	_, cmd = m.Update(keyMsg("a"))
	if cmd != nil {
		t.Error("expected repeat press to be ignored while in flight")
	}
}

func TestAnalyzeBeforeTripLoads(t *testing.T) {
	m := New()

	_, cmd := m.Update(keyMsg("a"))
	if cmd != nil {
		t.Error("analyze must be ignored before the trip loads")
	}
}

func TestReportRendering(t *testing.T) {
	m := New()
	m.SetTrip(sampleTrip())
	m.SetReport(sampleReport())

	view := m.View()
	for _, want := range []string{
		"62",
		"Medium Risk",
		"Petty crime near tourist areas",
		"Register with your embassy",
		"Moderate risk overall.",
		"Security Agent",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in report view", want)
		}
	}
	if m.Analyzing() {
		t.Error("expected analyzing cleared after report arrives")
	}
}

func TestAnalysisErrorKeepsTrip(t *testing.T) {
	m := New()
	m.SetTrip(sampleTrip())
	m.Update(keyMsg("a"))
	m.SetAnalysisError("Server error. Please try again later.")

	view := m.View()
	if !strings.Contains(view, "Server error") {
		t.Error("expected analysis error in view")
	}
	if !strings.Contains(view, "Cairo") {
		t.Error("trip facts must survive an analysis failure")
	}
	if !strings.Contains(view, "a to try again") {
		t.Error("expected retry hint")
	}

	// Retry is allowed after the failure
	_, cmd := m.Update(keyMsg("a"))
	if cmd == nil {
		t.Error("expected retry to trigger a new analysis")
	}
}

func TestBack(t *testing.T) {
	m := New()
	m.SetTrip(sampleTrip())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Errorf("expected BackMsg, got %T", cmd())
	}
}
