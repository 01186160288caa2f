package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"xdao.co/hashid/internal/cli"
	"xdao.co/hashid/internal/config"
)

func main() {
	// Pick up a local .env if present; already-set variables win.
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("HASHID_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config %s: %v\n", path, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	config.FromEnv(&cfg)

	logger := cli.NewLogger(cfg.LogLevel, os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	root := cli.NewRoot(&cli.App{Config: cfg, Logger: logger})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
