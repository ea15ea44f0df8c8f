// ABOUTME: Logout command for the tripsentry CLI
// ABOUTME: Removes the saved token blob

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout discards the session and returns an exit code
func runLogout(w io.Writer) int {
	store := newSession()

	wasAuthenticated := store.IsAuthenticated()
	if err := store.Logout(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if wasAuthenticated {
		fmt.Fprintln(w, "Signed out.")
	} else {
		fmt.Fprintln(w, "No active session.")
	}
	return 0
}
