// ABOUTME: Analyze command for the tripsentry CLI
// ABOUTME: Runs an AI risk analysis and optionally gates on the score

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"tripsentry/internal/client"
)

var failAbove float64

var analyzeCmd = &cobra.Command{
	Use:   "analyze <trip-id>",
	Short: "Run an AI risk analysis for a trip",
	Long: `Run an AI risk analysis for a trip and print the report.

With --fail-above, the command exits non-zero when the overall risk
score exceeds the threshold, so travel approval pipelines can gate on it.

Exit codes:
  0 - Analysis completed (and score within threshold, if set)
  1 - Overall risk score exceeded --fail-above
  2 - Error (connectivity, bad trip ID, backend failure)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runAnalyze(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&failAbove, "fail-above", -1, "Exit 1 when the overall risk score exceeds this value (0-100)")
}

// runAnalyze requests the analysis and returns an exit code
func runAnalyze(ctx context.Context, w io.Writer, arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fmt.Fprintln(w, "Error: trip ID must be a positive number")
		return 2
	}
	if failAbove > 100 {
		fmt.Fprintln(w, "Error: --fail-above must be between 0 and 100")
		return 2
	}

	store := newSession()
	if !store.IsAuthenticated() {
		fmt.Fprintln(w, "Error: not signed in. Run: tripsentry login")
		return 2
	}
	c := newClient(store)

	report, err := c.AnalyzeTripRisk(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprint(w, formatReportHuman(report))
	}

	if failAbove >= 0 && report.Analysis.OverallRiskScore > failAbove {
		if !IsJSONOutput() {
			fmt.Fprintf(w, "\nFAILED: overall risk score %.0f exceeds threshold %.0f\n",
				report.Analysis.OverallRiskScore, failAbove)
		}
		return 1
	}
	return 0
}

// formatReportHuman renders the risk report for terminals
func formatReportHuman(report *client.RiskReport) string {
	a := &report.Analysis

	out := fmt.Sprintf("Risk assessment for trip #%d (%s)\n", a.TripID, a.Destination)
	out += fmt.Sprintf("  Overall:  %.0f/100 (%s)\n", a.OverallRiskScore, a.RiskLevel)
	if a.TravelDates.Start != "" {
		out += fmt.Sprintf("  Window:   %s → %s (%d days)\n",
			a.TravelDates.Start, a.TravelDates.End, a.TravelDates.DurationDays)
	}

	if len(a.RiskScoreBreakdown) > 0 {
		out += "\nBreakdown:\n"
		categories := make([]string, 0, len(a.RiskScoreBreakdown))
		for cat := range a.RiskScoreBreakdown {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			out += fmt.Sprintf("  %-16s %5.0f\n", cat, a.RiskScoreBreakdown[cat])
		}
	}

	if len(a.TopRisks) > 0 {
		out += "\nTop risks:\n"
		for _, risk := range a.TopRisks {
			out += "  - " + risk + "\n"
		}
	}

	if len(a.ConsolidatedRecommendations) > 0 {
		out += "\nRecommendations:\n"
		for _, rec := range a.ConsolidatedRecommendations {
			out += "  - " + rec + "\n"
		}
	}

	if a.ExecutiveSummary != "" {
		out += "\nSummary:\n  " + a.ExecutiveSummary + "\n"
	}

	return out
}
