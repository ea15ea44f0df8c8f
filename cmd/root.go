// ABOUTME: Root command for the tripsentry CLI
// ABOUTME: Handles global flags and shared client construction

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tripsentry/internal/client"
	"tripsentry/internal/config"
	"tripsentry/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "tripsentry",
	Short: "CLI for the TripSentry travel risk service",
	Long: `tripsentry is a command-line interface for the TripSentry travel risk service.

It manages traveler profiles and trips, and runs AI risk assessments,
either interactively (tripsentry ui) or from scripts and CI pipelines.

Environment Variables:
  TRIPSENTRY_API_URL     Backend API URL (default: http://localhost:8000)
  TRIPSENTRY_CONFIG_DIR  Session and log directory (default: ~/.config/tripsentry)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides TRIPSENTRY_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("TRIPSENTRY_API_URL"); envURL != "" {
		return envURL
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession opens the session store and loads any saved tokens
func newSession() *session.Store {
	cfg := config.Load()
	store := session.New(cfg.ConfigDir)
	_ = store.Load()
	return store
}

// newClient builds an API client backed by the saved session
func newClient(store *session.Store) *client.Client {
	return client.New(GetAPIURL(), store)
}
