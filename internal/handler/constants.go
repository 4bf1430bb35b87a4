package handler

// Generic HTTP error messages for client responses.
// Server-side failures never expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing player id"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnavailableError      = "Storage is temporarily unavailable. Please try again."
	ErrMsgReadBodyFailed        = "Failed to read request body"
)

// Health responses
const (
	StatusBotRunning  = "Bot is running"
	StatusHealthy     = "healthy"
	StatusUnavailable = "unavailable"
)

// Success messages for API responses
const (
	MsgConfirmResetWithin = "Confirm the reset before the token expires"
	MsgPlayerReset        = "Game reset"
	MsgSaveImported       = "Save file loaded"
)

// ContentDisposition format for save file downloads.
const (
	SaveFileNameFormat       = "fishing_data_%s.json"
	ContentDispositionFormat = "attachment; filename=%q"
)
