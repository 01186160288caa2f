package config

import (
	"os"
	"path/filepath"
)

// DefaultStoreDir returns the default blob store directory based on the
// host OS. It prefers the XDG cache location and falls back to a dotdir in
// the user's home directory.
func DefaultStoreDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "xdao-hashid")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./hashid-store"
	}
	if isDir(filepath.Join(homeDir, "Library")) {
		// macOS: ~/Library/Caches/xdao-hashid
		return filepath.Join(homeDir, "Library", "Caches", "xdao-hashid")
	}
	return filepath.Join(homeDir, ".cache", "xdao-hashid")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
