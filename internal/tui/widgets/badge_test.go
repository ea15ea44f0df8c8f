// ABOUTME: Tests for status and risk badge widgets
// ABOUTME: Verifies level mapping and badge rendering

package widgets

import (
	"strings"
	"testing"

	"tripsentry/internal/tui/icons"
)

func TestLevelFromRisk(t *testing.T) {
	tests := []struct {
		riskLevel string
		want      StatusLevel
	}{
		{"Low", StatusOK},
		{"Medium", StatusWarning},
		{"High", StatusCritical},
		{"", StatusNeutral},
		{"unknown", StatusNeutral},
	}

	for _, tt := range tests {
		if got := LevelFromRisk(tt.riskLevel); got != tt.want {
			t.Errorf("LevelFromRisk(%q) = %d, want %d", tt.riskLevel, got, tt.want)
		}
	}
}

func TestStatusFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  StatusLevel
	}{
		{0, StatusOK},
		{39.9, StatusOK},
		{40, StatusWarning},
		{69.9, StatusWarning},
		{70, StatusCritical},
		{100, StatusCritical},
	}

	for _, tt := range tests {
		if got := StatusFromScore(tt.score); got != tt.want {
			t.Errorf("StatusFromScore(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestRiskBadge(t *testing.T) {
	if got := RiskBadge("Low"); !strings.Contains(got, "Low Risk") {
		t.Errorf("expected Low Risk text, got %q", got)
	}
	if got := RiskBadge("High"); !strings.Contains(got, "High Risk") {
		t.Errorf("expected High Risk text, got %q", got)
	}
	if got := RiskBadge("bogus"); !strings.Contains(got, "Unrated") {
		t.Errorf("expected Unrated for unknown level, got %q", got)
	}
}

func TestScoreBlock_ContainsScore(t *testing.T) {
	block := ScoreBlock(icons.Gauge, "Security", 75, "High risk", DefaultScoreBlockConfig())
	if !strings.Contains(block, "75") {
		t.Errorf("expected score in block, got %q", block)
	}
	if !strings.Contains(block, "Security") {
		t.Errorf("expected title in block, got %q", block)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := truncate("a very long caption here", 10); got != "a very ..." {
		t.Errorf("expected truncation with ellipsis, got %q", got)
	}
}
