package main

import (
	"fmt"

	"github.com/chalklabs/tutorgate/internal/config"
	"github.com/chalklabs/tutorgate/internal/storage"
)

// syncStatsPassword mirrors STATS_PASSWORD into the stored argon2id hash.
// With the variable unset, any previously stored hash is left alone, so
// removing it does not silently unlock the operator endpoints.
func syncStatsPassword(store storage.Storage, cfg *config.Config) error {
	if cfg.StatsPassword == "" {
		return nil
	}

	// Skip the rehash when the stored hash already matches.
	if hash, err := store.GetStatsPasswordHash(); err == nil && hash != "" {
		if ok, _ := storage.VerifyPassword(cfg.StatsPassword, hash); ok {
			return nil
		}
	}

	hash, err := storage.HashPassword(cfg.StatsPassword, nil)
	if err != nil {
		return fmt.Errorf("failed to hash stats password: %w", err)
	}
	if err := store.SetStatsPasswordHash(hash); err != nil {
		return fmt.Errorf("failed to save stats password: %w", err)
	}
	return nil
}
