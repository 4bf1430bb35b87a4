package fishing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

// scripted returns a random source that replays draws in order.
func scripted(t *testing.T, draws ...float64) func() float64 {
	t.Helper()
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		require.Less(t, i, len(draws), "ran out of scripted draws")
		d := draws[i]
		i++
		return d
	}
}

func constant(v float64) func() float64 {
	return func() float64 { return v }
}

// testCatalog is a small catalog with one species per populated tier.
func testCatalog(t *testing.T, species map[domain.Rarity][]domain.Species) *catalog.Catalog {
	t.Helper()
	items := []domain.Item{
		{Name: "Twig", Price: 0, CatchBonus: 1.0, Category: domain.CategoryRod, Starter: true},
		{Name: "Carbon Rod", Price: 300, CatchBonus: 1.5, RareBonus: 0.2, Category: domain.CategoryRod},
		{Name: "Worm", Price: 10, CatchBonus: 1.1, RareBonus: 0.05, Category: domain.CategoryConsumable},
	}
	rates := map[domain.Rarity]float64{
		domain.RarityCommon:    0.6,
		domain.RarityRare:      0.25,
		domain.RarityEpic:      0.12,
		domain.RarityLegendary: 0.03,
		domain.RarityJunk:      0.1,
	}
	cat, err := catalog.New(items, rates, species)
	require.NoError(t, err)
	return cat
}
