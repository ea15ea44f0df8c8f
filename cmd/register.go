// ABOUTME: Register command for the tripsentry CLI
// ABOUTME: Creates a new account on the backend

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

var (
	registerUsername    string
	registerEmail       string
	registerPassword    string
	registerRole        string
	registerNationality string
	registerDepartment  string
	registerJobTitle    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on the backend.

Roles:
  traveler  Regular traveler (default)
  admin_hr  HR administrator with access to the full traveler directory`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Account username (required)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password (required)")
	registerCmd.Flags().StringVar(&registerRole, "role", client.RoleTraveler, "Account role (traveler or admin_hr)")
	registerCmd.Flags().StringVar(&registerNationality, "nationality", "", "Nationality (optional)")
	registerCmd.Flags().StringVar(&registerDepartment, "department", "", "Department (optional)")
	registerCmd.Flags().StringVar(&registerJobTitle, "job-title", "", "Job title (optional)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}

// runRegister creates the account and returns an exit code
func runRegister(ctx context.Context, w io.Writer) int {
	if registerRole != client.RoleTraveler && registerRole != client.RoleAdmin {
		fmt.Fprintf(w, "Error: --role must be %s or %s\n", client.RoleTraveler, client.RoleAdmin)
		return 2
	}

	store := newSession()
	c := newClient(store)

	user, err := c.Register(ctx, client.RegisterInput{
		Username:    registerUsername,
		Email:       registerEmail,
		Password:    registerPassword,
		Role:        registerRole,
		Nationality: registerNationality,
		Department:  registerDepartment,
		JobTitle:    registerJobTitle,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Account %s created. Sign in with: tripsentry login -u %s\n", user.Username, user.Username)
	}
	return 0
}
