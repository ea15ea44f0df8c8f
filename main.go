// ABOUTME: Entry point for the tripsentry CLI
// ABOUTME: Terminal client for the travel risk assessment API

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tripsentry/cmd"
)

func main() {
	// A local .env may supply TRIPSENTRY_API_URL and friends; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
