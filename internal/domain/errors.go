package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Catalog / inventory errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgRodNotFound     = "rod not owned"
	ErrMsgNotARod         = "item is not a rod"
	ErrMsgRodNotEquipped  = "no rod equipped"
	ErrMsgNotPurchasable  = "item is not purchasable"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidCatalog  = "invalid catalog"
	ErrMsgPlayerIDMissing = "player id is required"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Snapshot errors
	ErrMsgMalformedSnapshot     = "save file is not valid JSON"
	ErrMsgSnapshotMissingPlayer = "save file does not contain this player"
	ErrMsgSnapshotIncomplete    = "save file record is incomplete"

	// Confirmation errors
	ErrMsgConfirmationExpired = "confirmation expired or unknown"

	// Storage errors
	ErrMsgStorageUnavailable = "storage unavailable"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrRodNotFound     = errors.New(ErrMsgRodNotFound)
	ErrNotARod         = errors.New(ErrMsgNotARod)
	ErrRodNotEquipped  = errors.New(ErrMsgRodNotEquipped)
	ErrNotPurchasable  = errors.New(ErrMsgNotPurchasable)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidCatalog  = errors.New(ErrMsgInvalidCatalog)
	ErrPlayerIDMissing = errors.New(ErrMsgPlayerIDMissing)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrMalformedSnapshot     = errors.New(ErrMsgMalformedSnapshot)
	ErrSnapshotMissingPlayer = errors.New(ErrMsgSnapshotMissingPlayer)
	ErrSnapshotIncomplete    = errors.New(ErrMsgSnapshotIncomplete)

	ErrConfirmationExpired = errors.New(ErrMsgConfirmationExpired)

	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
)

// IsUserError reports whether err is caused by player input rather than the environment.
func IsUserError(err error) bool {
	for _, target := range []error{
		ErrItemNotFound, ErrRodNotFound, ErrNotARod, ErrRodNotEquipped, ErrNotPurchasable,
		ErrInvalidInput, ErrInsufficientFunds, ErrMalformedSnapshot, ErrSnapshotMissingPlayer,
		ErrSnapshotIncomplete, ErrConfirmationExpired, ErrPlayerIDMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
