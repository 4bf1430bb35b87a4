package config

import "time"

// Storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort                = 5000
	DefaultServiceName         = "fishing-bot"
	DefaultSQLitePath          = "data/fishing.db"
	DefaultDBMaxConns          = 10
	DefaultCacheSize           = 1000
	DefaultCacheTTL            = 5 * time.Minute
	DefaultReelDelay           = 2 * time.Second
	DefaultResetConfirmTimeout = 30 * time.Second
)
