package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"termfolio/internal/content"
)

func init() {
	rootCmd.AddCommand(aboutCmd)
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show the profile bio",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := content.Load()
		if err != nil {
			return err
		}
		bio := f.Profile.Bio
		if bio == "" {
			fmt.Printf("%s — %s\n", f.Profile.Name, f.Profile.Title)
			return nil
		}
		out, err := glamour.Render(bio, "dark")
		if err != nil {
			// Unrenderable markdown still has readable source.
			fmt.Println(bio)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}
