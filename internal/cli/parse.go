package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xdao.co/hashid/hashid"
)

// newParseCommand constructs the `parse` subcommand.
func newParseCommand(app *App) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse <hex ...>",
		Short: "Validate identifiers and reprint them in a chosen format",
		Long: "Each argument must be a 32-character hex identifier (either case). Valid\n" +
			"identifiers are reprinted one per line in the requested format, so parse\n" +
			"doubles as a normalizer and a converter.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			upper, _ := cmd.Flags().GetBool("upper")
			for _, arg := range args {
				id, err := hashid.FromHexString(strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				rendered, err := Render(id, format, upper)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			}
			return nil
		},
	}
	parseCmd.Flags().String("format", app.Config.Format, "Output format: hex|uuid|multihash|cid")
	parseCmd.Flags().Bool("upper", app.Config.Uppercase, "Uppercase hex output")
	return parseCmd
}
