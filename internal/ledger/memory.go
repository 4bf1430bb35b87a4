package ledger

import (
	"context"
	"sync"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// MemoryStore keeps players in process memory. Nothing survives a restart;
// players carry progress across restarts with save files.
type MemoryStore struct {
	mu         sync.RWMutex
	players    map[string]*domain.Player
	starterRod string
}

// NewMemoryStore creates an empty store. starterRod seeds new players.
func NewMemoryStore(starterRod string) *MemoryStore {
	return &MemoryStore{
		players:    make(map[string]*domain.Player),
		starterRod: starterRod,
	}
}

func (s *MemoryStore) GetOrCreate(_ context.Context, playerID string) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	s.mu.RLock()
	p, ok := s.players[playerID]
	s.mu.RUnlock()
	if ok {
		return p.Clone(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[playerID]; ok {
		return p.Clone(), nil
	}
	p = domain.NewPlayer(playerID, s.starterRod)
	s.players[playerID] = p
	return p.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, player *domain.Player) error {
	if player == nil || player.ID == "" {
		return domain.ErrPlayerIDMissing
	}
	s.mu.Lock()
	s.players[player.ID] = player.Clone()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, playerID string, player *domain.Player) error {
	if playerID == "" || player == nil {
		return domain.ErrPlayerIDMissing
	}
	p := player.Clone()
	p.ID = playerID
	s.mu.Lock()
	s.players[playerID] = p
	s.mu.Unlock()
	return nil
}

// Len reports how many players are held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

func (s *MemoryStore) Close() error { return nil }
