// ABOUTME: HTTP client for the travel risk assessment backend
// ABOUTME: Wraps API calls with bearer auth and uniform error handling

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current access token, if any.
// The session store implements this; an empty string means unauthenticated.
type TokenSource interface {
	AccessToken() string
}

// Client is the API client for the travel risk backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client. tokens may be nil for unauthenticated use.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs a request and decodes the JSON response into out.
// A nil out skips decoding; a 204 response never attempts to read a body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if access := c.tokens.AccessToken(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts transport errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// Login calls POST /user/login and returns the issued token set
func (c *Client) Login(ctx context.Context, input LoginInput) (*AuthTokens, error) {
	var tokens AuthTokens
	if err := c.do(ctx, http.MethodPost, "/user/login", input, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register calls POST /user/register to create an account
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/user/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTravelers calls GET /core/travelers/
func (c *Client) ListTravelers(ctx context.Context) ([]TravelerProfile, error) {
	var profiles []TravelerProfile
	if err := c.do(ctx, http.MethodGet, "/core/travelers/", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateTravelerProfile calls POST /core/travelers/
func (c *Client) CreateTravelerProfile(ctx context.Context, input ProfileInput) (*TravelerProfile, error) {
	var profile TravelerProfile
	if err := c.do(ctx, http.MethodPost, "/core/travelers/", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateTravelerProfile calls PUT /core/travelers/{id}/
func (c *Client) UpdateTravelerProfile(ctx context.Context, id string, input ProfileInput) (*TravelerProfile, error) {
	var profile TravelerProfile
	path := fmt.Sprintf("/core/travelers/%s/", id)
	if err := c.do(ctx, http.MethodPut, path, input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListTrips calls GET /core/trips/
func (c *Client) ListTrips(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	if err := c.do(ctx, http.MethodGet, "/core/trips/", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip calls GET /core/trips/{id}/
func (c *Client) GetTrip(ctx context.Context, id int) (*Trip, error) {
	var trip Trip
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/core/trips/%d/", id), nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// CreateTrip calls POST /core/trips/
func (c *Client) CreateTrip(ctx context.Context, input TripInput) (*Trip, error) {
	var trip Trip
	if err := c.do(ctx, http.MethodPost, "/core/trips/", input, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// AnalyzeTripRisk calls POST /core/trips/{id}/analyze-risk/ and returns the
// report envelope. Generation happens server-side and can take a while; the
// caller's context bounds the wait.
func (c *Client) AnalyzeTripRisk(ctx context.Context, id int) (*RiskReport, error) {
	var report RiskReport
	path := fmt.Sprintf("/core/trips/%d/analyze-risk/", id)
	if err := c.do(ctx, http.MethodPost, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
