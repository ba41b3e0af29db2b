package cmd

import (
	"fmt"
	"os"

	"github.com/adsun-ai/adsun/internal/config"
	"github.com/adsun-ai/adsun/internal/db"
	"github.com/adsun-ai/adsun/internal/llm"
	"github.com/adsun-ai/adsun/internal/process"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `adsun init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w\nRun `adsun init` to reconfigure", err)
	}
	return cfg, nil
}

// openStore opens the configured database and wraps it in a process
// store. The caller owns the returned DB handle.
func openStore(cfg *config.Config) (*db.DB, *process.Store, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database %s: %w", cfg.DBPath, err)
	}
	return database, process.NewStore(database), nil
}

// buildClient creates the configured LLM client, or returns nil with a
// notice when it cannot be created. Everything except semantic search
// and freeform answers keeps working without a client.
func buildClient(cfg *config.Config) llm.Client {
	client, err := llm.New(string(cfg.Provider), cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable: %v\n", err)
		fmt.Fprintln(os.Stderr, "Continuing with deterministic answers only.")
		return nil
	}
	return client
}
