package config

import (
	"os"
	"strconv"
)

// FromEnv overlays HASHID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HASHID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HASHID_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("HASHID_UPPERCASE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Uppercase = b
		}
	}
	if v := os.Getenv("HASHID_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ChunkSize = n
		}
	}
	if v := os.Getenv("HASHID_STORE_DIR"); v != "" {
		cfg.StoreDir = v
	}
}
