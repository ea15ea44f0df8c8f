// ABOUTME: Tests for the analyze command
// ABOUTME: Verifies exit codes and threshold gating against a mock backend

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tripsentry/internal/client"
)

// withSession points the config dir at a temp dir holding a saved session
func withSession(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	tokens := client.AuthTokens{Access: "tok", UserID: "u-1", Role: client.RoleTraveler}
	data, _ := json.Marshal(tokens)
	if err := os.WriteFile(filepath.Join(dir, "tokens.json"), data, 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRIPSENTRY_CONFIG_DIR", dir)
}

// withoutSession points the config dir at an empty temp dir
func withoutSession(t *testing.T) {
	t.Helper()
	t.Setenv("TRIPSENTRY_CONFIG_DIR", t.TempDir())
}

func analysisServer(t *testing.T, score float64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/core/trips/7/analyze-risk/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(client.RiskReport{
			Status: "success",
			Analysis: client.RiskAnalysis{
				TripID:           7,
				Destination:      "Cairo, Egypt",
				OverallRiskScore: score,
				RiskLevel:        "Medium",
			},
			ReportSaved: true,
		})
	}))
}

func TestRunAnalyze_WithinThreshold(t *testing.T) {
	withSession(t)
	server := analysisServer(t, 55)
	defer server.Close()

	apiURL = server.URL
	failAbove = 70
	defer func() { apiURL = ""; failAbove = -1 }()

	var buf bytes.Buffer
	code := runAnalyze(context.Background(), &buf, "7")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", code, buf.String())
	}
	if !strings.Contains(buf.String(), "55") {
		t.Errorf("expected score in output, got %q", buf.String())
	}
}

func TestRunAnalyze_ExceedsThreshold(t *testing.T) {
	withSession(t)
	server := analysisServer(t, 82)
	defer server.Close()

	apiURL = server.URL
	failAbove = 70
	defer func() { apiURL = ""; failAbove = -1 }()

	var buf bytes.Buffer
	code := runAnalyze(context.Background(), &buf, "7")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "FAILED") {
		t.Errorf("expected failure notice, got %q", buf.String())
	}
}

func TestRunAnalyze_NoThreshold(t *testing.T) {
	withSession(t)
	server := analysisServer(t, 95)
	defer server.Close()

	apiURL = server.URL
	failAbove = -1
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runAnalyze(context.Background(), &buf, "7")
	if code != 0 {
		t.Fatalf("expected exit 0 without a threshold, got %d", code)
	}
}

func TestRunAnalyze_BadTripID(t *testing.T) {
	withSession(t)

	var buf bytes.Buffer
	if code := runAnalyze(context.Background(), &buf, "abc"); code != 2 {
		t.Errorf("expected exit 2 for non-numeric ID, got %d", code)
	}
	if code := runAnalyze(context.Background(), &buf, "0"); code != 2 {
		t.Errorf("expected exit 2 for zero ID, got %d", code)
	}
}

func TestRunAnalyze_NotSignedIn(t *testing.T) {
	withoutSession(t)

	var buf bytes.Buffer
	code := runAnalyze(context.Background(), &buf, "7")
	if code != 2 {
		t.Fatalf("expected exit 2 when signed out, got %d", code)
	}
	if !strings.Contains(buf.String(), "not signed in") {
		t.Errorf("expected sign-in hint, got %q", buf.String())
	}
}

func TestRunAnalyze_BackendError(t *testing.T) {
	withSession(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	code := runAnalyze(context.Background(), &buf, "7")
	if code != 2 {
		t.Fatalf("expected exit 2 for backend error, got %d", code)
	}
}

func TestRunAnalyze_JSONOutput(t *testing.T) {
	withSession(t)
	server := analysisServer(t, 62)
	defer server.Close()

	apiURL = server.URL
	jsonOutput = true
	defer func() { apiURL = ""; jsonOutput = false }()

	var buf bytes.Buffer
	if code := runAnalyze(context.Background(), &buf, "7"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	var report client.RiskReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if report.Analysis.OverallRiskScore != 62 {
		t.Errorf("expected score 62 in JSON, got %.0f", report.Analysis.OverallRiskScore)
	}
}
