// Package confirm issues short-lived confirmation tickets for destructive
// player actions. A ticket that times out is simply forgotten.
package confirm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/worker"
)

// Ticket is one pending confirmation.
type Ticket struct {
	Token     string    `json:"token"`
	PlayerID  string    `json:"player_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Scheduler is the subset of worker.Scheduler the manager needs.
type Scheduler interface {
	Schedule(key string, delay time.Duration, task func(ctx context.Context)) error
	Cancel(key string) bool
}

var _ Scheduler = (*worker.Scheduler)(nil)

// Manager holds at most one ticket per player.
type Manager struct {
	mu      sync.Mutex
	pending map[string]Ticket
	sched   Scheduler
	timeout time.Duration
	now     func() time.Time
}

// NewManager creates a manager whose tickets live for timeout.
func NewManager(sched Scheduler, timeout time.Duration) *Manager {
	return &Manager{
		pending: make(map[string]Ticket),
		sched:   sched,
		timeout: timeout,
		now:     time.Now,
	}
}

func timerKey(playerID string) string {
	return "confirm:" + playerID
}

// Request issues a new ticket for playerID, replacing any older one. onExpire,
// if not nil, runs when the ticket times out without being confirmed.
func (m *Manager) Request(ctx context.Context, playerID string, onExpire func(ctx context.Context, t Ticket)) (Ticket, error) {
	if playerID == "" {
		return Ticket{}, domain.ErrPlayerIDMissing
	}

	t := Ticket{
		Token:     uuid.NewString(),
		PlayerID:  playerID,
		ExpiresAt: m.now().Add(m.timeout),
	}

	m.mu.Lock()
	m.pending[playerID] = t
	m.mu.Unlock()

	err := m.sched.Schedule(timerKey(playerID), m.timeout, func(ctx context.Context) {
		if !m.take(playerID, t.Token) {
			return
		}
		logger.FromContext(ctx).Info("Confirmation expired", logger.AttrKeyPlayerID, playerID)
		if onExpire != nil {
			onExpire(ctx, t)
		}
	})
	if err != nil {
		m.take(playerID, t.Token)
		return Ticket{}, fmt.Errorf("failed to schedule confirmation expiry: %w", err)
	}

	logger.FromContext(ctx).Debug("Confirmation requested", logger.AttrKeyPlayerID, playerID, "expires_at", t.ExpiresAt)
	return t, nil
}

// take removes the ticket if token still matches the pending one.
func (m *Manager) take(playerID, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.pending[playerID]
	if !ok || t.Token != token {
		return false
	}
	delete(m.pending, playerID)
	return true
}

// Confirm consumes the ticket. It fails with ErrConfirmationExpired when the
// token is unknown, already used, superseded or timed out.
func (m *Manager) Confirm(playerID, token string) error {
	if !m.take(playerID, token) {
		return domain.ErrConfirmationExpired
	}
	m.sched.Cancel(timerKey(playerID))
	return nil
}

// Cancel discards the ticket. It reports whether the ticket was still pending.
func (m *Manager) Cancel(playerID, token string) bool {
	if !m.take(playerID, token) {
		return false
	}
	m.sched.Cancel(timerKey(playerID))
	return true
}

// Pending returns the outstanding ticket for playerID, if any.
func (m *Manager) Pending(playerID string) (Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.pending[playerID]
	return t, ok
}
