// Package cli implements the sprachlog command-line interface using Cobra.
// Each subcommand maps to one tracker operation (today, done, note, ...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprachlog",
	Short: "sprachlog — Track your language study, offline",
	Long: `sprachlog is a local-first language-study tracker.
Daily task lists, streaks, levels, achievements and a vocabulary bank,
all stored on your machine. No accounts, no network required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
