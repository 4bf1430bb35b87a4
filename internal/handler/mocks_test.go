package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

// MockService is a testify mock of fishing.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) Cast(ctx context.Context, playerID string) (*domain.CastResult, error) {
	args := m.Called(ctx, playerID)
	res, _ := args.Get(0).(*domain.CastResult)
	return res, args.Error(1)
}

func (m *MockService) Shop(ctx context.Context) []domain.Item {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item)
}

func (m *MockService) Buy(ctx context.Context, playerID, itemName string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, playerID, itemName)
	res, _ := args.Get(0).(*domain.PurchaseResult)
	return res, args.Error(1)
}

func (m *MockService) Equip(ctx context.Context, playerID, rodName string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, rodName)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockService) Bag(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockService) Reset(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockService) Export(ctx context.Context, playerID string) ([]byte, error) {
	args := m.Called(ctx, playerID)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *MockService) Import(ctx context.Context, playerID string, data []byte) (*domain.Player, error) {
	args := m.Called(ctx, playerID, data)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockService) Catalog() *catalog.Catalog {
	return catalog.Default()
}

func (m *MockService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPinger mocks ledger.Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// withPlayerID attaches the chi URL parameter the handlers read.
func withPlayerID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(PlayerIDParam, id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
