package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"termfolio/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "termfolio – portfolio terminal",
	Long:  "termfolio serves a portfolio as a simulated terminal: an interactive TUI, a JSON API, and a formatter for markup-rich command output.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
