// ABOUTME: Travelers command for the tripsentry CLI
// ABOUTME: Lists traveler profiles visible to the current session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tripsentry/internal/client"
)

var travelersCmd = &cobra.Command{
	Use:   "travelers",
	Short: "List traveler profiles",
	Long: `List traveler profiles.

Travelers see only their own record; HR administrators see the full
directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTravelers(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(travelersCmd)
}

// runTravelers lists profiles and returns an exit code
func runTravelers(ctx context.Context, w io.Writer) int {
	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	list, err := c.ListTravelers(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(list, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(list) == 0 {
		fmt.Fprintln(w, "No traveler profiles.")
		return 0
	}

	for _, t := range list {
		fmt.Fprintln(w, formatTravelerLine(t))
	}
	return 0
}

// formatTravelerLine renders one profile as a single list row
func formatTravelerLine(t client.TravelerProfile) string {
	line := fmt.Sprintf("#%-6s %s (%s)  expires %s", t.ID, t.PassportNumber, t.PassportIssuingCountry, t.PassportExpiryDate)
	if t.FrequentTraveler {
		line += "  [frequent]"
	}
	return line
}
