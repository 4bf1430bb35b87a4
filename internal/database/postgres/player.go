// Package postgres implements the player ledger on PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/ledger"
)

var _ ledger.Store = (*PlayerRepository)(nil)

// PlayerRepository stores each player as a JSONB document.
type PlayerRepository struct {
	db         *pgxpool.Pool
	starterRod string
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool, starterRod string) *PlayerRepository {
	return &PlayerRepository{db: db, starterRod: starterRod}
}

// GetOrCreate returns the player, inserting the fresh-start record first if needed.
func (r *PlayerRepository) GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	fresh, err := json.Marshal(domain.NewPlayer(playerID, r.starterRod))
	if err != nil {
		return nil, fmt.Errorf("failed to encode player: %w", err)
	}

	// The no-op update makes RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO players (player_id, data)
		VALUES ($1, $2)
		ON CONFLICT (player_id) DO UPDATE SET player_id = EXCLUDED.player_id
		RETURNING data
	`
	var raw []byte
	if err := r.db.QueryRow(ctx, query, playerID, fresh).Scan(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to get player: %v", domain.ErrStorageUnavailable, err)
	}

	var p domain.Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode player %s: %w", playerID, err)
	}
	p.ID = playerID
	return p.Clone(), nil
}

func (r *PlayerRepository) upsert(ctx context.Context, playerID string, p *domain.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player: %w", err)
	}

	query := `
		INSERT INTO players (player_id, data)
		VALUES ($1, $2)
		ON CONFLICT (player_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, playerID, data); err != nil {
		return fmt.Errorf("%w: failed to save player: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Save writes back a player record.
func (r *PlayerRepository) Save(ctx context.Context, player *domain.Player) error {
	if player == nil || player.ID == "" {
		return domain.ErrPlayerIDMissing
	}
	return r.upsert(ctx, player.ID, player)
}

// Replace swaps the whole record in one statement.
func (r *PlayerRepository) Replace(ctx context.Context, playerID string, player *domain.Player) error {
	if playerID == "" || player == nil {
		return domain.ErrPlayerIDMissing
	}
	return r.upsert(ctx, playerID, player)
}

// Ping checks the connection.
func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the pool.
func (r *PlayerRepository) Close() error {
	r.db.Close()
	return nil
}
