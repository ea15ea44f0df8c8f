// ABOUTME: Trips command for the tripsentry CLI
// ABOUTME: Lists trips and creates new ones from flags

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
)

var (
	tripCountry       string
	tripCity          string
	tripTraveler      int
	tripStart         string
	tripEnd           string
	tripPurpose       string
	tripAccommodation string
	tripTransport     string
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List your trips",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTrips(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var tripsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new trip",
	Long: `Create a new trip.

Dates use YYYY-MM-DD. The end date must be on or after the start date;
this is checked locally before any request is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTripsCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(tripsCmd)
	tripsCmd.AddCommand(tripsCreateCmd)

	tripsCreateCmd.Flags().StringVar(&tripCountry, "country", "", "Destination country (required)")
	tripsCreateCmd.Flags().StringVar(&tripCity, "city", "", "Destination city (required)")
	tripsCreateCmd.Flags().IntVar(&tripTraveler, "traveler", 0, "Traveler record ID (required)")
	tripsCreateCmd.Flags().StringVar(&tripStart, "start", "", "Start date, YYYY-MM-DD (required)")
	tripsCreateCmd.Flags().StringVar(&tripEnd, "end", "", "End date, YYYY-MM-DD (required)")
	tripsCreateCmd.Flags().StringVar(&tripPurpose, "purpose", "", "Trip purpose (required)")
	tripsCreateCmd.Flags().StringVar(&tripAccommodation, "accommodation", "", "Accommodation (required)")
	tripsCreateCmd.Flags().StringVar(&tripTransport, "transport", "flight", "Transport mode")
	tripsCreateCmd.MarkFlagRequired("country")
	tripsCreateCmd.MarkFlagRequired("city")
	tripsCreateCmd.MarkFlagRequired("traveler")
	tripsCreateCmd.MarkFlagRequired("start")
	tripsCreateCmd.MarkFlagRequired("end")
	tripsCreateCmd.MarkFlagRequired("purpose")
	tripsCreateCmd.MarkFlagRequired("accommodation")
}

// runTrips lists trips and returns an exit code
func runTrips(ctx context.Context, w io.Writer) int {
	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	list, err := c.ListTrips(ctx)
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
		fmt.Fprintln(w, "No trips yet.")
		return 0
	}

	for _, t := range list {
		fmt.Fprintln(w, formatTripLine(t))
	}
	return 0
}

// formatTripLine renders one trip as a single list row
func formatTripLine(t client.Trip) string {
	line := fmt.Sprintf("#%-4d %s, %s  %s → %s", t.ID, t.DestinationCity, t.DestinationCountry, t.StartDate, t.EndDate)
	if t.Purpose != "" {
		line += "  (" + t.Purpose + ")"
	}
	return line
}

// runTripsCreate validates input, posts the trip, and returns an exit code
func runTripsCreate(ctx context.Context, w io.Writer) int {
	if err := validateTripDates(tripStart, tripEnd); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if tripTraveler < 1 {
		fmt.Fprintln(w, "Error: --traveler must be a positive traveler record ID")
		return 2
	}

	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	trip, err := c.CreateTrip(ctx, client.TripInput{
		Traveler:           tripTraveler,
		DestinationCountry: tripCountry,
		DestinationCity:    tripCity,
		StartDate:          tripStart,
		EndDate:            tripEnd,
		Purpose:            tripPurpose,
		Accommodation:      tripAccommodation,
		TransportMode:      tripTransport,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(trip, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Trip #%d to %s, %s created.\n", trip.ID, trip.DestinationCity, trip.DestinationCountry)
	}
	return 0
}

// validateTripDates checks date format and ordering before any request
func validateTripDates(start, end string) error {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("--start must be a date in YYYY-MM-DD form")
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return fmt.Errorf("--end must be a date in YYYY-MM-DD form")
	}
	if e.Before(s) {
		return fmt.Errorf("end date must be on or after the start date")
	}
	return nil
}
