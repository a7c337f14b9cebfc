package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tl",
	Short: "Tasklight command-line client",
	Long:  `A command-line client for the Tasklight task management server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(flagLogLevel)
	},
}

// Global flags
var (
	jsonOutput   bool
	flagURL      string
	flagToken    string
	flagLogLevel string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Server API base URL (overrides config and TASKLIGHT_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (overrides config and TASKLIGHT_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
