// Package ledger stores player records. Every Store hands out copies, so a
// caller can mutate a record freely and only Save makes the change visible.
package ledger

import (
	"context"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Store is the player persistence boundary.
type Store interface {
	// GetOrCreate returns the player, creating a fresh-start record first if
	// the id has never been seen.
	GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error)

	// Save writes back a record previously obtained from GetOrCreate.
	Save(ctx context.Context, player *domain.Player) error

	// Replace swaps the whole record for playerID in one step.
	Replace(ctx context.Context, playerID string, player *domain.Player) error

	Close() error
}

// Pinger is implemented by stores backed by a remote database.
type Pinger interface {
	Ping(ctx context.Context) error
}
