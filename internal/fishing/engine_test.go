package fishing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

func TestResolveBonuses(t *testing.T) {
	cat := catalog.Default()

	t.Run("starter rod without bait", func(t *testing.T) {
		p := domain.NewPlayer("p", catalog.ItemBasicRod)

		bonuses, bait := ResolveBonuses(cat, p)

		assert.Equal(t, domain.Bonuses{CatchBonus: 1.0, RareBonus: 0.0}, bonuses)
		assert.Empty(t, bait)
	})

	t.Run("bait multiplies catch and adds rarity", func(t *testing.T) {
		p := domain.NewPlayer("p", catalog.ItemBasicRod)
		p.AddItem(catalog.ItemAdvancedRod, 1)
		p.AddItem(catalog.ItemBait, 2)
		p.CurrentRod = catalog.ItemAdvancedRod

		bonuses, bait := ResolveBonuses(cat, p)

		assert.Equal(t, catalog.ItemBait, bait)
		assert.InDelta(t, 1.5*1.1, bonuses.CatchBonus, 1e-9)
		assert.InDelta(t, 0.25, bonuses.RareBonus, 1e-9)
		assert.Equal(t, 1, p.Count(catalog.ItemBait), "exactly one unit is spent")
	})

	t.Run("last bait removes the entry", func(t *testing.T) {
		p := domain.NewPlayer("p", catalog.ItemBasicRod)
		p.AddItem(catalog.ItemBait, 1)

		_, bait := ResolveBonuses(cat, p)

		assert.Equal(t, catalog.ItemBait, bait)
		_, present := p.Items[catalog.ItemBait]
		assert.False(t, present)
	})

	t.Run("unknown rod falls back to starter bonuses", func(t *testing.T) {
		p := &domain.Player{ID: "p", Items: map[string]int{"Ghost Rod": 1}, CurrentRod: "Ghost Rod"}

		bonuses, _ := ResolveBonuses(cat, p)

		assert.Equal(t, cat.Starter().CatchBonus, bonuses.CatchBonus)
		assert.Equal(t, cat.Starter().RareBonus, bonuses.RareBonus)
	})
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0.70, SuccessRate(1.0), "starter rod is exactly the base rate")
	assert.Equal(t, 0.95, SuccessRate(1.5), "1.05 is capped")
	assert.Equal(t, 0.95, SuccessRate(100))
	assert.Equal(t, 0.0, SuccessRate(0))

	prev := 0.0
	for cb := 0.0; cb <= 3.0; cb += 0.01 {
		rate := SuccessRate(cb)
		assert.GreaterOrEqual(t, rate, prev, "non-decreasing at %v", cb)
		assert.LessOrEqual(t, rate, domain.MaxSuccessRate)
		prev = rate
	}
}

func TestHooked(t *testing.T) {
	assert.True(t, Hooked(0.7, 0.7), "a draw equal to the rate succeeds")
	assert.True(t, Hooked(0.7, 0.1))
	assert.False(t, Hooked(0.7, 0.7000001))
}

func TestAdjustedRates(t *testing.T) {
	base := catalog.Default().BaseRates()

	t.Run("weights sum to one and never go negative", func(t *testing.T) {
		for _, b := range []float64{0, 0.05, 0.1, 0.25, 0.35, 0.5, 1, 2, 10, 1000} {
			t.Run(fmt.Sprintf("bonus %v", b), func(t *testing.T) {
				rates := AdjustedRates(base, b)

				sum := 0.0
				for _, r := range domain.Rarities {
					assert.GreaterOrEqual(t, rates[r], 0.0, "%s", r)
					sum += rates[r]
				}
				assert.InDelta(t, 1.0, sum, 1e-9)
			})
		}
	})

	t.Run("zero bonus keeps the base table", func(t *testing.T) {
		rates := AdjustedRates(base, 0)
		for _, r := range domain.Rarities {
			assert.InDelta(t, base[r], rates[r], 1e-12, "%s", r)
		}
	})

	t.Run("bonus shifts mass upward", func(t *testing.T) {
		rates := AdjustedRates(base, 0.1)

		assert.InDelta(t, base[domain.RarityLegendary]+0.04, rates[domain.RarityLegendary], 1e-9)
		assert.InDelta(t, base[domain.RarityEpic]+0.03, rates[domain.RarityEpic], 1e-9)
		assert.InDelta(t, base[domain.RarityRare]+0.02, rates[domain.RarityRare], 1e-9)
		assert.InDelta(t, base[domain.RarityCommon]-0.063, rates[domain.RarityCommon], 1e-9)
		assert.InDelta(t, base[domain.RarityJunk]-0.027, rates[domain.RarityJunk], 1e-9)
	})

	t.Run("large bonus drains common then junk", func(t *testing.T) {
		rates := AdjustedRates(base, 2)

		assert.Equal(t, 0.0, rates[domain.RarityCommon])
		assert.Equal(t, 0.0, rates[domain.RarityJunk])
		assert.Greater(t, rates[domain.RarityLegendary], rates[domain.RarityRare])
	})

	t.Run("base table is not mutated", func(t *testing.T) {
		before := catalog.Default().BaseRates()
		_ = AdjustedRates(base, 0.5)
		assert.Equal(t, before, base)
	})

	t.Run("all-zero table degenerates to common", func(t *testing.T) {
		rates := AdjustedRates(map[domain.Rarity]float64{}, 0)

		assert.Equal(t, 1.0, rates[domain.RarityCommon])
		assert.Equal(t, 0.0, rates[domain.RarityJunk])
	})
}

func TestSelectRarity(t *testing.T) {
	rates := map[domain.Rarity]float64{
		domain.RarityCommon:    0.5,
		domain.RarityRare:      0.2,
		domain.RarityEpic:      0.15,
		domain.RarityLegendary: 0.05,
		domain.RarityJunk:      0.1,
	}

	tests := []struct {
		u    float64
		want domain.Rarity
	}{
		{0, domain.RarityCommon},
		{0.5, domain.RarityCommon},
		{0.5000001, domain.RarityRare},
		{0.65, domain.RarityRare},
		{0.8, domain.RarityEpic},
		{0.88, domain.RarityLegendary},
		{0.95, domain.RarityJunk},
		{0.999999, domain.RarityJunk},
		{1.5, domain.RarityCommon},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("u=%v", tt.u), func(t *testing.T) {
			assert.Equal(t, tt.want, SelectRarity(rates, tt.u))
		})
	}
}

func TestGenerateCatch(t *testing.T) {
	minnow := domain.Species{Name: "Minnow", MinWeight: 0.1, MaxWeight: 0.5, PricePerKg: 10}
	perch := domain.Species{Name: "Perch", MinWeight: 1, MaxWeight: 2, PricePerKg: 5}
	cat := testCatalog(t, map[domain.Rarity][]domain.Species{
		domain.RarityCommon: {minnow, perch},
	})

	t.Run("weight 0.33 at 10 per kg prices at 3", func(t *testing.T) {
		c := GenerateCatch(cat, domain.RarityCommon, scripted(t, 0.0, 0.575))

		assert.Equal(t, "Minnow", c.Species.Name)
		assert.Equal(t, 0.33, c.Weight)
		assert.Equal(t, 3, c.Price)
	})

	t.Run("species are chosen uniformly by index", func(t *testing.T) {
		c := GenerateCatch(cat, domain.RarityCommon, scripted(t, 0.75, 0.0))

		assert.Equal(t, "Perch", c.Species.Name)
		assert.Equal(t, 1.0, c.Weight)
		assert.Equal(t, 5, c.Price)
	})

	t.Run("empty tier falls back to common", func(t *testing.T) {
		c := GenerateCatch(cat, domain.RarityEpic, scripted(t, 0.0, 1.0))

		assert.Equal(t, domain.RarityCommon, c.Rarity)
		assert.Equal(t, "Minnow", c.Species.Name)
		assert.Equal(t, 0.5, c.Weight)
		assert.Equal(t, 5, c.Price)
	})

	t.Run("weights stay in range", func(t *testing.T) {
		for i := 0; i <= 20; i++ {
			u := float64(i) / 20
			c := GenerateCatch(cat, domain.RarityCommon, scripted(t, 0.0, u))
			require.GreaterOrEqual(t, c.Weight, minnow.MinWeight)
			require.LessOrEqual(t, c.Weight, minnow.MaxWeight)
		}
	})
}

func TestPrice(t *testing.T) {
	assert.Equal(t, 3, Price(0.33, 10))
	assert.Equal(t, 28, Price(0.29, 100), "truncates the float product like existing save data")
	assert.Equal(t, 0, Price(0.05, 1))
	assert.Equal(t, 1950, Price(9.75, 200))
}
