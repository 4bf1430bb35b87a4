package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// SQLiteStore keeps one JSON document per player in a local SQLite file.
type SQLiteStore struct {
	db         *sql.DB
	starterRod string
}

// OpenSQLite opens (and if needed creates) the database at dbPath.
func OpenSQLite(dbPath, starterRod string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout waits on locks, WAL with synchronous(NORMAL) keeps writes cheap.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, starterRod: starterRod}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS players (
			player_id   TEXT    PRIMARY KEY,
			data        TEXT    NOT NULL,
			updated_at  INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM players WHERE player_id = ?`, playerID).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		p := domain.NewPlayer(playerID, s.starterRod)
		if err := s.insertIfAbsent(ctx, p); err != nil {
			return nil, err
		}
		// Another writer may have won the insert.
		return s.GetOrCreate(ctx, playerID)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return decodePlayer(playerID, []byte(raw))
}

func (s *SQLiteStore) insertIfAbsent(ctx context.Context, p *domain.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO players (player_id, data, updated_at) VALUES (?, ?, ?) ON CONFLICT(player_id) DO NOTHING`,
		p.ID, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) upsert(ctx context.Context, playerID string, p *domain.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO players (player_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		playerID, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, player *domain.Player) error {
	if player == nil || player.ID == "" {
		return domain.ErrPlayerIDMissing
	}
	return s.upsert(ctx, player.ID, player)
}

func (s *SQLiteStore) Replace(ctx context.Context, playerID string, player *domain.Player) error {
	if playerID == "" || player == nil {
		return domain.ErrPlayerIDMissing
	}
	return s.upsert(ctx, playerID, player)
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// decodePlayer turns a stored JSON document back into a record with non-nil maps.
func decodePlayer(playerID string, raw []byte) (*domain.Player, error) {
	var p domain.Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode player %s: %w", playerID, err)
	}
	p.ID = playerID
	return p.Clone(), nil
}

