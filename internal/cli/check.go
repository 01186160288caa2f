package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"xdao.co/hashid/hashid"
)

// newCheckCommand constructs the `check` subcommand.
func newCheckCommand(app *App) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <list ...>",
		Short: "Verify files against md5sum-style checklists",
		Long: "Each list line is: digest, two spaces (or space and *), file path. Blank\n" +
			"lines and lines starting with # are skipped. Exits non-zero when any file\n" +
			"fails verification.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunkSize, _ := cmd.Flags().GetInt("chunk-size")
			quiet, _ := cmd.Flags().GetBool("quiet")
			out := cmd.OutOrStdout()

			var checked, failed, malformed int
			for _, listPath := range args {
				f, err := os.Open(listPath)
				if err != nil {
					return fmt.Errorf("open checklist: %w", err)
				}
				scanner := bufio.NewScanner(f)
				for scanner.Scan() {
					line := strings.TrimRight(scanner.Text(), "\r")
					if line == "" || strings.HasPrefix(line, "#") {
						continue
					}
					digestHex, target, ok := splitChecklistLine(line)
					if !ok {
						malformed++
						app.Logger.Warn("improperly formatted checklist line", "list", listPath)
						continue
					}
					want, err := hashid.FromHexString(digestHex)
					if err != nil {
						malformed++
						app.Logger.Warn("malformed digest in checklist", "list", listPath, "err", err)
						continue
					}
					checked++
					got, err := sumFile(target, chunkSize)
					if err != nil {
						failed++
						fmt.Fprintf(out, "%s: FAILED open or read\n", target)
						continue
					}
					if got != want {
						failed++
						fmt.Fprintf(out, "%s: FAILED\n", target)
						continue
					}
					if !quiet {
						fmt.Fprintf(out, "%s: OK\n", target)
					}
				}
				scanErr := scanner.Err()
				_ = f.Close()
				if scanErr != nil {
					return fmt.Errorf("read checklist: %w", scanErr)
				}
			}

			if malformed > 0 {
				app.Logger.Warn("checklist lines skipped", "malformed", malformed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checksums failed", failed, checked)
			}
			if checked == 0 {
				return fmt.Errorf("no checksums verified")
			}
			return nil
		},
	}
	checkCmd.Flags().Int("chunk-size", app.Config.ChunkSize, "Read buffer size in bytes")
	checkCmd.Flags().Bool("quiet", false, "Only print failures")
	return checkCmd
}

// splitChecklistLine splits an md5sum layout line: 32 hex chars, a space,
// then a space (text mode) or * (binary mode), then the path.
func splitChecklistLine(line string) (digest, path string, ok bool) {
	if len(line) < hashid.EncodedSize+3 {
		return "", "", false
	}
	sep := line[hashid.EncodedSize : hashid.EncodedSize+2]
	if sep != "  " && sep != " *" {
		return "", "", false
	}
	return line[:hashid.EncodedSize], line[hashid.EncodedSize+2:], true
}
