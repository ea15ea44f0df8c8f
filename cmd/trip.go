// ABOUTME: Trip command for the tripsentry CLI
// ABOUTME: Shows one trip's details

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"tripsentry/internal/client"
)

var tripCmd = &cobra.Command{
	Use:   "trip <id>",
	Short: "Show one trip",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTrip(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(tripCmd)
}

// runTrip fetches one trip and returns an exit code
func runTrip(ctx context.Context, w io.Writer, arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fmt.Fprintln(w, "Error: trip ID must be a positive number")
		return 2
	}

	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	trip, err := c.GetTrip(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(trip, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprint(w, formatTripHuman(trip))
	return 0
}

// formatTripHuman renders a trip as a key/value block
func formatTripHuman(t *client.Trip) string {
	out := fmt.Sprintf("Trip #%d\n", t.ID)
	out += fmt.Sprintf("  Destination:   %s, %s\n", t.DestinationCity, t.DestinationCountry)
	out += fmt.Sprintf("  Dates:         %s → %s\n", t.StartDate, t.EndDate)
	out += fmt.Sprintf("  Purpose:       %s\n", t.Purpose)
	if t.Accommodation != "" {
		out += fmt.Sprintf("  Accommodation: %s\n", t.Accommodation)
	}
	if t.TransportMode != "" {
		out += fmt.Sprintf("  Transport:     %s\n", t.TransportMode)
	}
	return out
}
