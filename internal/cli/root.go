// Package cli contains Cobra CLI commands for the hashid tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"xdao.co/hashid/internal/config"
)

// App carries the resolved configuration and logger shared by all commands.
type App struct {
	Config config.Config
	Logger *slog.Logger
}

// NewRoot constructs the root Cobra command for the hashid tool.
// It registers the sum, check and parse subcommands.
func NewRoot(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "xdao-hashid",
		Short: "Compute, verify and convert MD5-derived identifiers",
		Long: "xdao-hashid fingerprints files and text with 128-bit MD5-derived identifiers,\n" +
			"verifies md5sum-style checklists, converts identifiers between hex, UUID,\n" +
			"multihash and CID renderings, and keeps blobs in a content-addressed store.\n\n" +
			"Defaults come from HASHID_* environment variables (see also HASHID_CONFIG for\n" +
			"a JSON or YAML config file); flags override both.",
	}
	root.AddCommand(
		newSumCommand(app),
		newCheckCommand(app),
		newParseCommand(app),
		newStoreCommand(app),
	)
	return root
}
