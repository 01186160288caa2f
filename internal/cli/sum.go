package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xdao.co/hashid/hashid"
)

// newSumCommand constructs the `sum` subcommand.
func newSumCommand(app *App) *cobra.Command {
	sumCmd := &cobra.Command{
		Use:   "sum [file ...]",
		Short: "Print identifiers for files, stdin or literal text",
		Long: "Reads each file (stdin when none is given, or when the file is -) and prints\n" +
			"its identifier in md5sum layout: digest, two spaces, name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			upper, _ := cmd.Flags().GetBool("upper")
			chunkSize, _ := cmd.Flags().GetInt("chunk-size")
			asText, _ := cmd.Flags().GetBool("text")
			out := cmd.OutOrStdout()

			if asText {
				for _, arg := range args {
					rendered, err := Render(hashid.FromString(arg), format, upper)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s  %s\n", rendered, arg)
				}
				return nil
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				var (
					id  hashid.ID
					err error
				)
				if path == "-" {
					id, err = hashid.FromReaderWithOptions(cmd.InOrStdin(),
						hashid.ReadOptions{ChunkSize: chunkSize})
				} else {
					app.Logger.Debug("digesting file", "path", path, "chunk_size", chunkSize)
					id, err = sumFile(path, chunkSize)
				}
				if err != nil {
					return fmt.Errorf("sum %s: %w", path, err)
				}
				rendered, rerr := Render(id, format, upper)
				if rerr != nil {
					return rerr
				}
				fmt.Fprintf(out, "%s  %s\n", rendered, path)
			}
			return nil
		},
	}
	sumCmd.Flags().String("format", app.Config.Format, "Output format: hex|uuid|multihash|cid")
	sumCmd.Flags().Bool("upper", app.Config.Uppercase, "Uppercase hex output")
	sumCmd.Flags().Int("chunk-size", app.Config.ChunkSize, "Read buffer size in bytes")
	sumCmd.Flags().Bool("text", false, "Hash arguments as literal text instead of reading files")
	return sumCmd
}

// sumFile digests one file; the digest helper owns the handle from Open on.
func sumFile(path string, chunkSize int) (hashid.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return hashid.Zero, err
	}
	return hashid.FromReaderWithOptions(f, hashid.ReadOptions{
		ChunkSize:  chunkSize,
		CloseInput: true,
	})
}
