package config

import (
	"errors"
	"fmt"
)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.DiscordToken == "" {
		errs = append(errs, errors.New("DISCORD_BOT_TOKEN environment variable must be set"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.StorageBackend {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite backend"))
		}
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME must be set for the postgres backend"))
		}
		if c.DBMaxConns <= 0 {
			errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q (want %s, %s or %s)",
			c.StorageBackend, StorageMemory, StorageSQLite, StoragePostgres))
	}

	if c.StorageBackend != StorageMemory && c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("CACHE_SIZE must not be negative, got %d", c.CacheSize))
	}
	if c.ReelDelay < 0 {
		errs = append(errs, fmt.Errorf("REEL_DELAY must not be negative, got %s", c.ReelDelay))
	}
	if c.ResetConfirmTimeout <= 0 {
		errs = append(errs, fmt.Errorf("RESET_CONFIRM_TIMEOUT must be positive, got %s", c.ResetConfirmTimeout))
	}

	return errors.Join(errs...)
}
