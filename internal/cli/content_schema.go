package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"termfolio/internal/content"
)

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentSchemaCmd)
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the content file",
}

var contentSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for content.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := content.MarshalSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
