// ABOUTME: UI command for the tripsentry CLI
// ABOUTME: Launches the interactive terminal interface

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tripsentry/internal/config"
	"tripsentry/internal/session"
	"tripsentry/internal/tui"
	"tripsentry/internal/tui/debuglog"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive terminal UI",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg := config.Load()

		if err := debuglog.Init(cfg.ConfigDir, cfg.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		}
		defer debuglog.Close()

		store := session.New(cfg.ConfigDir)
		c := newClient(store)

		if err := tui.Run(ctx, c, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
