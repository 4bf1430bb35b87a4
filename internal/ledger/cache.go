package ledger

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// CacheSchemaVersion is bumped whenever the cached record layout changes so
// stale entries are dropped on read.
const CacheSchemaVersion = "1.0"

type cachedPlayerEntry struct {
	Version  string
	Player   *domain.Player
	CachedAt time.Time
}

// CachedStore puts an expiring LRU in front of a slower Store. Writes go to
// the backing store first and only refresh the cache once they succeed.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, *cachedPlayerEntry]
}

// NewCachedStore wraps next with a cache of at most size players kept for ttl.
func NewCachedStore(next Store, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

func (c *CachedStore) get(playerID string) (*domain.Player, bool) {
	entry, found := c.lru.Get(playerID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(playerID)
		return nil, false
	}
	return entry.Player.Clone(), true
}

func (c *CachedStore) set(player *domain.Player) {
	c.lru.Add(player.ID, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   player.Clone(),
		CachedAt: time.Now(),
	})
}

func (c *CachedStore) GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	if p, ok := c.get(playerID); ok {
		return p, nil
	}
	p, err := c.next.GetOrCreate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	c.set(p)
	return p, nil
}

func (c *CachedStore) Save(ctx context.Context, player *domain.Player) error {
	if player == nil {
		return domain.ErrPlayerIDMissing
	}
	if err := c.next.Save(ctx, player); err != nil {
		c.lru.Remove(player.ID)
		return err
	}
	c.set(player)
	return nil
}

func (c *CachedStore) Replace(ctx context.Context, playerID string, player *domain.Player) error {
	if err := c.next.Replace(ctx, playerID, player); err != nil {
		c.lru.Remove(playerID)
		return err
	}
	p := player.Clone()
	p.ID = playerID
	c.set(p)
	return nil
}

// Invalidate drops a single cached player.
func (c *CachedStore) Invalidate(playerID string) {
	c.lru.Remove(playerID)
}

func (c *CachedStore) Ping(ctx context.Context) error {
	if p, ok := c.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *CachedStore) Close() error {
	c.lru.Purge()
	return c.next.Close()
}
