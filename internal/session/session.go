// ABOUTME: Durable auth session for the tripsentry client
// ABOUTME: Persists the token blob as JSON in the config directory

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripsentry/internal/client"
)

// User is the minimal identity reconstructed from a stored token blob.
// Username and email are not persisted and stay empty until a fresh login
// response provides them.
type User struct {
	ID   string
	Role string
}

// Store owns the in-memory session state and its single durable file.
// One Store exists per process; pass it explicitly, never reach for globals.
type Store struct {
	configDir string
	tokens    *client.AuthTokens
	user      *User
	loaded    bool
}

// New creates a session store rooted at the given config directory
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// tokensFile returns the path to the persisted token blob
func (s *Store) tokensFile() string {
	return filepath.Join(s.configDir, "tokens.json")
}

// Load reads the token blob from disk. A missing file resolves to an
// unauthenticated session; an unparseable or schema-invalid blob is
// discarded and the file removed.
func (s *Store) Load() error {
	s.loaded = true

	data, err := os.ReadFile(s.tokensFile())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var tokens client.AuthTokens
	if err := json.Unmarshal(data, &tokens); err != nil || tokens.Access == "" {
		os.Remove(s.tokensFile())
		return nil
	}

	s.tokens = &tokens
	s.user = &User{ID: tokens.UserID, Role: tokens.Role}
	return nil
}

// Loaded reports whether Load has resolved yet
func (s *Store) Loaded() bool {
	return s.loaded
}

// Login stores the token set in memory and on disk and derives the user stub
func (s *Store) Login(tokens client.AuthTokens) error {
	s.tokens = &tokens
	s.user = &User{ID: tokens.UserID, Role: tokens.Role}

	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.tokensFile(), data, 0600)
}

// Logout clears memory and removes the durable blob
func (s *Store) Logout() error {
	s.tokens = nil
	s.user = nil

	err := os.Remove(s.tokensFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsAuthenticated is the mere presence of a token set. No signature or
// expiry validation happens locally; expiry surfaces as a 401 later.
func (s *Store) IsAuthenticated() bool {
	return s.tokens != nil
}

// IsAdmin reports whether the current user holds the admin role
func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.Role == client.RoleAdmin
}

// CurrentUser returns the user stub, or nil when unauthenticated
func (s *Store) CurrentUser() *User {
	return s.user
}

// Tokens returns the current token set, or nil when unauthenticated
func (s *Store) Tokens() *client.AuthTokens {
	return s.tokens
}

// AccessToken implements client.TokenSource
func (s *Store) AccessToken() string {
	if s.tokens == nil {
		return ""
	}
	return s.tokens.Access
}

// TokenExpiry peeks at the access token's exp claim without verifying the
// signature. Display-only: it never gates authentication.
func (s *Store) TokenExpiry() (time.Time, bool) {
	if s.tokens == nil {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(s.tokens.Access, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
