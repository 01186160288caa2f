package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"xdao.co/hashid/internal/config"
)

const (
	bananaHex  = "0af797fcfb5878029a003b65960d1d30" // md5("I'm a banana")
	buggerHex  = "7478d5b72648205d8585020deeb4b06e" // md5("Bugger all")
	bananaUUID = "0af797fc-fb58-7802-9a00-3b65960d1d30"
)

// runCLI executes the root command against buffers and returns stdout,
// stderr and the Execute error.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	app := &App{Config: config.Default(), Logger: NewLogger("error", io.Discard)}
	root := NewRoot(app)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// writeTemp drops content into a fresh temp file and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
