package fishing

// Log messages
const (
	LogMsgCastStarted       = "Cast started"
	LogMsgCastResolved      = "Cast resolved"
	LogMsgCastRefused       = "Cast refused"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgRodEquipped       = "Rod equipped"
	LogMsgPlayerReset       = "Player reset"
	LogMsgSnapshotExported  = "Save file exported"
	LogMsgSnapshotImported  = "Save file imported"
	LogMsgSnapshotRejected  = "Save file rejected"
	LogMsgFailedToLoad      = "Failed to load player"
	LogMsgFailedToSave      = "Failed to save player"
)
