// ABOUTME: Whoami command for the tripsentry CLI
// ABOUTME: Prints the saved session identity and advisory token expiry

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Show the signed-in user and the access token's expiry.

The expiry is read from the token without verifying it and is advisory
only; the backend remains the authority on whether a token is accepted.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints session info and returns an exit code
func runWhoami(w io.Writer) int {
	store := newSession()

	if !store.IsAuthenticated() {
		if IsJSONOutput() {
			fmt.Fprintln(w, `{"authenticated": false}`)
		} else {
			fmt.Fprintln(w, "Not signed in. Run: tripsentry login")
		}
		return 2
	}

	user := store.CurrentUser()
	expiry, hasExpiry := store.TokenExpiry()

	if IsJSONOutput() {
		out := map[string]interface{}{
			"authenticated": true,
			"user_id":       user.ID,
			"role":          user.Role,
		}
		if hasExpiry {
			out["token_expires_at"] = expiry.Format(time.RFC3339)
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "User ID: %s\n", user.ID)
	fmt.Fprintf(w, "Role:    %s\n", user.Role)
	if hasExpiry {
		fmt.Fprintf(w, "Token:   expires %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}
	return 0
}
