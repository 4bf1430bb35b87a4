package bootstrap

// Log messages
const (
	LogMsgStartingFishingBot  = "Starting FishingBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgCatalogLoaded       = "Catalog loaded"
	LogMsgStoreOpened         = "Player store opened"
	LogMsgCacheEnabled        = "Player cache enabled"
)

// Shutdown messages
const (
	LogMsgShuttingDown          = "Shutting down..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgSchedulerShutdownFail = "Scheduler shutdown failed"
	LogMsgServiceShutdownFailed = "Fishing service shutdown failed"
	LogMsgStoreCloseFailed      = "Player store close failed"
	LogMsgStopped               = "FishingBot stopped"
)
