// Package fishing is the game engine: it resolves casts, sells equipment and
// manages the player ledger through an injected store.
package fishing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/concurrency"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/metrics"
	"github.com/osse101/FishingBot_Go/internal/snapshot"
	"github.com/osse101/FishingBot_Go/internal/utils"
)

// Service defines the game operations available to presenters
type Service interface {
	Cast(ctx context.Context, playerID string) (*domain.CastResult, error)
	Shop(ctx context.Context) []domain.Item
	Buy(ctx context.Context, playerID, itemName string) (*domain.PurchaseResult, error)
	Equip(ctx context.Context, playerID, rodName string) (*domain.Player, error)
	Bag(ctx context.Context, playerID string) (*domain.Player, error)
	Reset(ctx context.Context, playerID string) (*domain.Player, error)
	Export(ctx context.Context, playerID string) ([]byte, error)
	Import(ctx context.Context, playerID string, data []byte) (*domain.Player, error)
	Catalog() *catalog.Catalog
	Shutdown(ctx context.Context) error
}

type service struct {
	cat   *catalog.Catalog
	store ledger.Store
	locks *concurrency.LockManager
	rnd   func() float64 // For rolling RNG
	wg    sync.WaitGroup
}

// Option customizes a service.
type Option func(*service)

// WithRandom replaces the random source; tests use it to script draws.
func WithRandom(rnd func() float64) Option {
	return func(s *service) {
		s.rnd = rnd
	}
}

// NewService creates the game engine.
func NewService(cat *catalog.Catalog, store ledger.Store, opts ...Option) Service {
	s := &service{
		cat:   cat,
		store: store,
		locks: concurrency.NewLockManager(),
		rnd:   utils.RandomFloat,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Catalog() *catalog.Catalog {
	return s.cat
}

// withPlayer loads playerID and runs fn while holding that player's lock.
// When fn returns save=true the record is written back before unlocking.
func (s *service) withPlayer(ctx context.Context, playerID string, fn func(p *domain.Player) (save bool, err error)) error {
	if playerID == "" {
		return domain.ErrPlayerIDMissing
	}

	s.wg.Add(1)
	defer s.wg.Done()

	return s.locks.WithLock(playerID, func() error {
		log := logger.FromContext(ctx)

		p, err := s.store.GetOrCreate(ctx, playerID)
		if err != nil {
			log.Error(LogMsgFailedToLoad, logger.AttrKeyPlayerID, playerID, "error", err)
			return fmt.Errorf("failed to load player: %w", err)
		}

		save, err := fn(p)
		if err != nil || !save {
			return err
		}

		if err := s.store.Save(ctx, p); err != nil {
			log.Error(LogMsgFailedToSave, logger.AttrKeyPlayerID, playerID, "error", err)
			return fmt.Errorf("failed to save player: %w", err)
		}
		return nil
	})
}

// Cast runs one complete fishing attempt. Bait is spent on every attempt;
// money, tally and counters only change when something is hooked.
func (s *service) Cast(ctx context.Context, playerID string) (*domain.CastResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCastStarted, logger.AttrKeyPlayerID, playerID)

	var result *domain.CastResult
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) (bool, error) {
		if !p.HasEquippedRod() {
			log.Info(LogMsgCastRefused, logger.AttrKeyPlayerID, playerID, "current_rod", p.CurrentRod)
			return false, fmt.Errorf("%w: %q is not in your bag", domain.ErrRodNotEquipped, p.CurrentRod)
		}
		if it, ok := s.cat.Item(p.CurrentRod); ok && !it.IsRod() {
			log.Info(LogMsgCastRefused, logger.AttrKeyPlayerID, playerID, "current_rod", p.CurrentRod)
			return false, fmt.Errorf("%w: %q is not a rod", domain.ErrRodNotEquipped, p.CurrentRod)
		}

		bonuses, bait := ResolveBonuses(s.cat, p)
		rate := SuccessRate(bonuses.CatchBonus)

		res := &domain.CastResult{
			PlayerID:    playerID,
			Rod:         p.CurrentRod,
			UsedBait:    bait != "",
			Bait:        bait,
			Bonuses:     bonuses,
			SuccessRate: rate,
		}
		if bait != "" {
			res.BaitRemaining = p.Count(bait)
		}

		p.TotalCasts++
		if Hooked(rate, s.rnd()) {
			tier := SelectRarity(AdjustedRates(s.cat.BaseRates(), bonuses.RareBonus), s.rnd())
			c := GenerateCatch(s.cat, tier, s.rnd)

			p.Money += c.Price
			if p.FishCaught == nil {
				p.FishCaught = map[string]int{}
			}
			p.FishCaught[c.Species.Name]++
			p.TotalCatches++

			res.Success = true
			res.Catch = &c
		}
		res.Money = p.Money
		res.TotalCatches = p.TotalCatches

		result = res
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	recordCast(result)
	log.Info(LogMsgCastResolved,
		logger.AttrKeyPlayerID, playerID,
		"success", result.Success,
		"rate", result.SuccessRate,
		"bait", result.Bait)
	return result, nil
}

func recordCast(res *domain.CastResult) {
	if res.UsedBait {
		metrics.BaitConsumed.WithLabelValues(res.Bait).Inc()
	}
	if !res.Success {
		metrics.CastsTotal.WithLabelValues(metrics.OutcomeEscaped).Inc()
		return
	}
	metrics.CastsTotal.WithLabelValues(metrics.OutcomeCaught).Inc()
	metrics.CatchesTotal.WithLabelValues(string(res.Catch.Rarity)).Inc()
	metrics.MoneyEarned.Add(float64(res.Catch.Price))
}

func (s *service) Shop(_ context.Context) []domain.Item {
	return s.cat.Shop()
}

// Buy debits the item price and adds one unit to the bag.
func (s *service) Buy(ctx context.Context, playerID, itemName string) (*domain.PurchaseResult, error) {
	item, err := s.cat.Lookup(itemName)
	if err != nil {
		return nil, err
	}
	if item.Starter {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPurchasable, item.Name)
	}

	var result *domain.PurchaseResult
	err = s.withPlayer(ctx, playerID, func(p *domain.Player) (bool, error) {
		if p.Money < item.Price {
			return false, fmt.Errorf("%w: %s costs %d, you have %d", domain.ErrInsufficientFunds, item.Name, item.Price, p.Money)
		}
		p.Money -= item.Price
		p.AddItem(item.Name, 1)

		result = &domain.PurchaseResult{
			Item:     item.Name,
			Price:    item.Price,
			Quantity: p.Count(item.Name),
			Money:    p.Money,
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsBought.WithLabelValues(item.Name).Inc()
	metrics.MoneySpent.Add(float64(item.Price))
	logger.FromContext(ctx).Info(LogMsgPurchaseCompleted,
		logger.AttrKeyPlayerID, playerID, "item", item.Name, "price", item.Price)
	return result, nil
}

// Equip switches to a rod the player owns. Names match case and whitespace
// insensitively against the bag.
func (s *service) Equip(ctx context.Context, playerID, rodName string) (*domain.Player, error) {
	var result *domain.Player
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) (bool, error) {
		want := catalog.NormalizeName(rodName)
		owned := ""
		for name, n := range p.Items {
			if n > 0 && catalog.NormalizeName(name) == want {
				owned = name
				break
			}
		}
		if owned == "" {
			if suggestion := s.suggestOwnedRod(p, rodName); suggestion != "" {
				return false, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrRodNotFound, rodName, suggestion)
			}
			return false, fmt.Errorf("%w: %q", domain.ErrRodNotFound, rodName)
		}

		item, ok := s.cat.Item(owned)
		if !ok || !item.IsRod() {
			return false, fmt.Errorf("%w: %s", domain.ErrNotARod, owned)
		}

		p.CurrentRod = owned
		result = p.Clone()
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRodEquipped, logger.AttrKeyPlayerID, playerID, "rod", result.CurrentRod)
	return result, nil
}

func (s *service) suggestOwnedRod(p *domain.Player, input string) string {
	suggestion := s.cat.Suggest(input)
	if suggestion == "" || p.Count(suggestion) == 0 {
		return ""
	}
	if item, ok := s.cat.Item(suggestion); !ok || !item.IsRod() {
		return ""
	}
	return suggestion
}

// Bag returns a copy of the player's record, creating it on first use.
func (s *service) Bag(ctx context.Context, playerID string) (*domain.Player, error) {
	var result *domain.Player
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) (bool, error) {
		result = p.Clone()
		return false, nil
	})
	return result, err
}

// Reset overwrites the player with a fresh start. Callers gate this behind a
// confirmation.
func (s *service) Reset(ctx context.Context, playerID string) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	s.wg.Add(1)
	defer s.wg.Done()

	fresh := domain.NewPlayer(playerID, s.cat.Starter().Name)
	err := s.locks.WithLock(playerID, func() error {
		return s.store.Replace(ctx, playerID, fresh)
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToSave, logger.AttrKeyPlayerID, playerID, "error", err)
		return nil, fmt.Errorf("failed to reset player: %w", err)
	}

	metrics.ResetsTotal.Inc()
	logger.FromContext(ctx).Info(LogMsgPlayerReset, logger.AttrKeyPlayerID, playerID)
	return fresh.Clone(), nil
}

// Export renders the player's save file.
func (s *service) Export(ctx context.Context, playerID string) ([]byte, error) {
	p, err := s.Bag(ctx, playerID)
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues(metrics.OperationExport, metrics.ResultError).Inc()
		return nil, err
	}

	data, err := snapshot.Export(p)
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues(metrics.OperationExport, metrics.ResultError).Inc()
		return nil, err
	}

	metrics.SnapshotsTotal.WithLabelValues(metrics.OperationExport, metrics.ResultOK).Inc()
	logger.FromContext(ctx).Info(LogMsgSnapshotExported, logger.AttrKeyPlayerID, playerID, "bytes", len(data))
	return data, nil
}

// Import parses a save file without holding the player's lock, then swaps the
// record in one step. A rejected file leaves the existing record untouched.
func (s *service) Import(ctx context.Context, playerID string, data []byte) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	p, err := snapshot.Import(playerID, data)
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues(metrics.OperationImport, metrics.ResultRejected).Inc()
		log.Info(LogMsgSnapshotRejected, logger.AttrKeyPlayerID, playerID, "error", err)
		return nil, err
	}

	s.wg.Add(1)
	defer s.wg.Done()

	err = s.locks.WithLock(playerID, func() error {
		return s.store.Replace(ctx, playerID, p)
	})
	if err != nil {
		metrics.SnapshotsTotal.WithLabelValues(metrics.OperationImport, metrics.ResultError).Inc()
		log.Error(LogMsgFailedToSave, logger.AttrKeyPlayerID, playerID, "error", err)
		return nil, fmt.Errorf("failed to import save file: %w", err)
	}

	metrics.SnapshotsTotal.WithLabelValues(metrics.OperationImport, metrics.ResultOK).Inc()
	log.Info(LogMsgSnapshotImported, logger.AttrKeyPlayerID, playerID, "money", p.Money)
	return p.Clone(), nil
}

// Shutdown waits for in-flight operations to finish.
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("fishing service shutdown timed out"), ctx.Err())
	}
}
