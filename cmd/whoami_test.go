// ABOUTME: Tests for the whoami command
// ABOUTME: Verifies session reporting and exit codes

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunWhoami_SignedIn(t *testing.T) {
	withSession(t)

	var buf bytes.Buffer
	if code := runWhoami(&buf); code != 0 {
		t.Fatalf("expected exit 0, got %d (output: %s)", code, buf.String())
	}
	if !strings.Contains(buf.String(), "u-1") {
		t.Errorf("expected user id in output, got %q", buf.String())
	}
}

func TestRunWhoami_NotSignedIn(t *testing.T) {
	withoutSession(t)

	var buf bytes.Buffer
	if code := runWhoami(&buf); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not signed in") {
		t.Errorf("expected sign-in hint, got %q", buf.String())
	}
}
