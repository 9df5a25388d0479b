package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"termfolio/internal/content"
)

func init() {
	projectsCmd.AddCommand(projectsAddCmd)
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			p        content.Project
			stack    string
			featured bool
		)

		green := lipgloss.Color("#03BF87")
		theme := huh.ThemeCharm()
		theme.FieldSeparator = lipgloss.NewStyle()
		theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
		theme.Focused.Base.BorderForeground(green)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewNote().Title("New project").Description("Saved to content.json"),
				huh.NewInput().Title("ID").
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return errors.New("id is required")
						}
						return nil
					}).
					Value(&p.ID),
				huh.NewInput().Title("Name").Value(&p.Name),
				huh.NewInput().Title("Description").Value(&p.Description),
				huh.NewInput().Title("Stack").Description("comma-separated").Value(&stack),
				huh.NewInput().Title("URL").Value(&p.URL),
				huh.NewConfirm().Title("Featured?").Value(&featured),
			),
		).WithTheme(theme).WithWidth(60)

		if err := form.Run(); err != nil {
			return err // form canceled or failed
		}

		for _, s := range strings.Split(stack, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Stack = append(p.Stack, s)
			}
		}
		p.Featured = featured

		existed, err := content.AddProject(p)
		if err != nil {
			return err
		}
		if existed {
			fmt.Printf("project %q already exists\n", p.ID)
			return nil
		}
		fmt.Printf("\n✓ added %s\n\n", p.ID)
		return nil
	},
}
