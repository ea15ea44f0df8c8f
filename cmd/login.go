// ABOUTME: Login command for the tripsentry CLI
// ABOUTME: Exchanges credentials for tokens and persists the session

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"tripsentry/internal/client"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save the session",
	Long: `Sign in with username and password and save the issued tokens.

Credentials come from flags; missing ones are prompted for interactively.
Subsequent commands use the saved session until you run tripsentry logout.

Exit codes:
  0 - Signed in
  2 - Error (bad credentials, connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username (prompted when omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
}

// promptCredentials asks for whichever credentials the flags left empty
func promptCredentials() error {
	var fields []huh.Field
	if loginUsername == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&loginUsername).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("username is required")
				}
				return nil
			}))
	}
	if loginPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&loginPassword).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("password is required")
				}
				return nil
			}))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// runLogin performs the login and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if err := promptCredentials(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	store := newSession()
	c := newClient(store)

	tokens, err := c.Login(ctx, client.LoginInput{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if err := store.Login(*tokens); err != nil {
		fmt.Fprintf(w, "Error: failed to save session: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out := map[string]interface{}{
			"status":  "ok",
			"user_id": tokens.UserID,
			"role":    tokens.Role,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", loginUsername, tokens.Role)
	}
	return 0
}
