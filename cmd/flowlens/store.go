package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/flowlens-ai/flowlens/pkg/cache"
	cachefile "github.com/flowlens-ai/flowlens/pkg/cache/file"
	"github.com/flowlens-ai/flowlens/pkg/cache/memory"
	cachesqlite "github.com/flowlens-ai/flowlens/pkg/cache/sqlite"
	"github.com/flowlens-ai/flowlens/pkg/config"
)

// loadConfig reads the config file, falling back to defaults (environment
// only) when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// openStore opens the response cache backend selected by the config.
func openStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "", "file":
		return cachefile.New(cfg.Cache.Dir)
	case "sqlite":
		return cachesqlite.New(cfg.DBPath)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
