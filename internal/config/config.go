package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"xdao.co/hashid/hashid"
)

// Rendering formats accepted by the CLI and the HASHID_FORMAT variable.
const (
	FormatHex       = "hex"
	FormatUUID      = "uuid"
	FormatMultihash = "multihash"
	FormatCID       = "cid"
)

// Config is the tool configuration loaded from file/env.
type Config struct {
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	Format    string `json:"format" yaml:"format"`
	Uppercase bool   `json:"uppercase" yaml:"uppercase"`
	ChunkSize int    `json:"chunkSize" yaml:"chunkSize"`
	StoreDir  string `json:"storeDir" yaml:"storeDir"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		Format:    FormatHex,
		Uppercase: false,
		ChunkSize: hashid.DefaultChunkSize,
		StoreDir:  DefaultStoreDir(),
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate rejects configurations the tool cannot run with.
func (c Config) Validate() error {
	switch c.Format {
	case FormatHex, FormatUUID, FormatMultihash, FormatCID:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("config: chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.StoreDir == "" {
		return fmt.Errorf("config: store directory is required")
	}
	return nil
}
