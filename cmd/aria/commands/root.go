// Package commands implements the aria CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aria",
	Short: "aria - voice-driven personal assistant",
	Long: `aria is a decision-routing assistant: every utterance is labeled by a
decision model, routed to the matching capability, and answered.

  aria run               Start the assistant loop
  aria ask "<utterance>" Run a single cycle and exit
  aria config            Manage configuration`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI.
func Execute(ver string) error {
	version = ver
	return rootCmd.Execute()
}

var version string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aria %s\n", version)
	},
}
