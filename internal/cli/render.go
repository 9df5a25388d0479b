package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termfolio/internal/icons"
	"termfolio/internal/termfmt"
	"termfolio/internal/ui"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Bool("json", false, "print the fragment list as JSON instead of ANSI output")
}

var renderCmd = &cobra.Command{
	Use:   "render [text]",
	Short: "Run text through the output formatter",
	Long:  "Formats a span of terminal markup (SGR colors, OSC-8 hyperlinks, [[icon:...]] tokens, bare URLs) and prints the result. Reads stdin when no argument is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = strings.Join(args, " ")
		} else {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			input = strings.TrimSuffix(string(b), "\n")
		}

		lines := termfmt.Format(input, icons.Default)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(lines, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		r := &ui.Renderer{}
		fmt.Println(r.RenderLines(lines))
		return nil
	},
}
