// ABOUTME: Profile command for the tripsentry CLI
// ABOUTME: Shows and updates the caller's own traveler profile

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tripsentry/internal/client"
	"tripsentry/internal/session"
)

var (
	profilePassport string
	profileCountry  string
	profileExpiry   string
	profileHealth   string
	profileFrequent bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your traveler profile",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfile(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your traveler profile",
	Long: `Create or update your traveler profile.

The profile is created when none exists, otherwise it is replaced with
the given values.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfileSet(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().StringVar(&profilePassport, "passport-number", "", "Passport number (required)")
	profileSetCmd.Flags().StringVar(&profileCountry, "issuing-country", "", "Passport issuing country (required)")
	profileSetCmd.Flags().StringVar(&profileExpiry, "expiry", "", "Passport expiry date, YYYY-MM-DD (required)")
	profileSetCmd.Flags().StringVar(&profileHealth, "health-conditions", "", "Health conditions shared with risk agents")
	profileSetCmd.Flags().BoolVar(&profileFrequent, "frequent", false, "Mark as a frequent traveler")
	profileSetCmd.MarkFlagRequired("passport-number")
	profileSetCmd.MarkFlagRequired("issuing-country")
	profileSetCmd.MarkFlagRequired("expiry")
}

// findOwnProfile locates the caller's profile in the visible traveler list.
// The backend scopes the list to the caller for non-admin roles, so when no
// record matches the user id the first record is still theirs.
func findOwnProfile(ctx context.Context, c *client.Client, store *session.Store) (*client.TravelerProfile, error) {
	list, err := c.ListTravelers(ctx)
	if err != nil {
		return nil, err
	}
	user := store.CurrentUser()
	for i := range list {
		if user != nil && list[i].User == user.ID {
			return &list[i], nil
		}
	}
	if len(list) > 0 {
		return &list[0], nil
	}
	return nil, nil
}

// runProfile shows the profile and returns an exit code
func runProfile(ctx context.Context, w io.Writer) int {
	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	profile, err := findOwnProfile(ctx, c, store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if profile == nil {
		fmt.Fprintln(w, "No profile yet. Create one with: tripsentry profile set")
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(profile, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprint(w, formatProfileHuman(profile))
	return 0
}

// runProfileSet creates or updates the profile and returns an exit code
func runProfileSet(ctx context.Context, w io.Writer) int {
	if _, err := time.Parse("2006-01-02", profileExpiry); err != nil {
		fmt.Fprintln(w, "Error: --expiry must be a date in YYYY-MM-DD form")
		return 2
	}

	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	existing, err := findOwnProfile(ctx, c, store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	input := client.ProfileInput{
		PassportNumber:         profilePassport,
		PassportIssuingCountry: profileCountry,
		PassportExpiryDate:     profileExpiry,
		HealthConditions:       profileHealth,
		FrequentTraveler:       profileFrequent,
	}

	var saved *client.TravelerProfile
	if existing != nil {
		saved, err = c.UpdateTravelerProfile(ctx, existing.ID, input)
	} else {
		saved, err = c.CreateTravelerProfile(ctx, input)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(saved, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, "Profile saved.")
	}
	return 0
}

// formatProfileHuman renders a profile as a key/value block
func formatProfileHuman(p *client.TravelerProfile) string {
	out := fmt.Sprintf("Passport:  %s (%s)\n", p.PassportNumber, p.PassportIssuingCountry)
	out += fmt.Sprintf("Expires:   %s\n", p.PassportExpiryDate)
	if p.HealthConditions != "" {
		out += fmt.Sprintf("Health:    %s\n", p.HealthConditions)
	}
	out += fmt.Sprintf("Frequent:  %v\n", p.FrequentTraveler)
	return out
}
