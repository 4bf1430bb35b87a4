package fishing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// MockStore implements ledger.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetOrCreate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player).Clone(), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockStore) Replace(ctx context.Context, playerID string, player *domain.Player) error {
	args := m.Called(ctx, playerID, player)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
