// Package config provides loading and environment overlay for the hashid
// tool configuration. It exposes a Default() baseline, an optional file
// loader, and a HASHID_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load(".hashid.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil { ... }
package config
