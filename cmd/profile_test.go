// ABOUTME: Tests for the profile commands
// ABOUTME: Verifies own-record resolution against a mock backend

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripsentry/internal/client"
)

func TestRunProfile_MatchesOwnRecord(t *testing.T) {
	withSession(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.TravelerProfile{
			{ID: "3", User: "u-2", PassportNumber: "B9999999", PassportIssuingCountry: "France"},
			{ID: "8", User: "u-1", PassportNumber: "A1234567", PassportIssuingCountry: "Egypt"},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if code := runProfile(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", code, buf.String())
	}
	if !strings.Contains(buf.String(), "A1234567") {
		t.Errorf("expected own passport in output, got %q", buf.String())
	}
}

func TestRunProfile_FallsBackToFirstRecord(t *testing.T) {
	// Session user is u-1; neither record carries that id. The list is
	// scoped to the caller server-side, so the first record is theirs.
	withSession(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.TravelerProfile{
			{ID: "3", User: "7", PassportNumber: "C5550001", PassportIssuingCountry: "Japan"},
			{ID: "5", User: "9", PassportNumber: "D5550002", PassportIssuingCountry: "Brazil"},
		})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if code := runProfile(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", code, buf.String())
	}
	if !strings.Contains(buf.String(), "C5550001") {
		t.Errorf("expected first record's passport, got %q", buf.String())
	}
}

func TestRunProfile_NoProfileYet(t *testing.T) {
	withSession(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.TravelerProfile{})
	}))
	defer server.Close()

	apiURL = server.URL
	defer func() { apiURL = "" }()

	var buf bytes.Buffer
	if code := runProfile(context.Background(), &buf); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "No profile yet") {
		t.Errorf("expected no-profile hint, got %q", buf.String())
	}
}

func TestRunProfileSet_UpdatesFallbackRecord(t *testing.T) {
	withSession(t)

	var sawUpdate bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/core/travelers/":
			json.NewEncoder(w).Encode([]client.TravelerProfile{
				{ID: "3", User: "7", PassportNumber: "C5550001"},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/core/travelers/3/":
			sawUpdate = true
			json.NewEncoder(w).Encode(client.TravelerProfile{ID: "3", User: "7", PassportNumber: "E7770003"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	apiURL = server.URL
	profilePassport = "E7770003"
	profileCountry = "Egypt"
	profileExpiry = "2031-04-01"
	defer func() {
		apiURL = ""
		profilePassport = ""
		profileCountry = ""
		profileExpiry = ""
	}()

	var buf bytes.Buffer
	if code := runProfileSet(context.Background(), &buf); code != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", code, buf.String())
	}
	if !sawUpdate {
		t.Error("expected an update of the existing record, not a create")
	}
}
