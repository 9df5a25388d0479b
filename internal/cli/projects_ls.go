package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"termfolio/internal/content"
)

func init() {
	projectsCmd.AddCommand(projectsLsCmd)
}

var projectsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := content.Load()
		if err != nil {
			return err
		}
		if len(f.Projects) == 0 {
			fmt.Println("no projects")
			return nil
		}
		for _, p := range f.Projects {
			marker := " "
			if p.Featured {
				marker = "★"
			}
			line := fmt.Sprintf("%s %s — %s", marker, p.ID, p.Name)
			if len(p.Stack) > 0 {
				line += fmt.Sprintf(" (%s)", strings.Join(p.Stack, ", "))
			}
			fmt.Println(line)
		}
		return nil
	},
}
