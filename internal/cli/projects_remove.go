package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"termfolio/internal/content"
)

func init() {
	projectsCmd.AddCommand(projectsRemoveCmd)
}

var projectsRemoveCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm"},
	Short:   "Remove projects by ID",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, missing, err := content.RemoveProjects(args)
		if err != nil {
			return err
		}
		for _, id := range removed {
			fmt.Printf("removed %s\n", id)
		}
		for _, id := range missing {
			fmt.Printf("not found: %s\n", id)
		}
		return nil
	},
}
