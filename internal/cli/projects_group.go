package cli

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(projectsCmd)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage portfolio projects",
}
