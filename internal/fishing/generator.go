package fishing

import (
	"math"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/utils"
)

// GenerateCatch picks a species from tier uniformly, then a weight uniformly
// within the species range rounded to 2 decimals. Price is truncated.
// A tier without species falls back to common.
func GenerateCatch(cat *catalog.Catalog, tier domain.Rarity, rnd func() float64) domain.Catch {
	list := cat.Species(tier)
	if len(list) == 0 {
		tier = domain.RarityCommon
		list = cat.Species(tier)
	}

	sp := list[utils.PickIndex(len(list), rnd())]
	weight := utils.RoundTo(utils.Lerp(sp.MinWeight, sp.MaxWeight, rnd()), 2)

	return domain.Catch{
		Species: sp,
		Rarity:  tier,
		Weight:  weight,
		Price:   Price(weight, sp.PricePerKg),
	}
}

// Price is floor(weight * pricePerKg).
func Price(weight, pricePerKg float64) int {
	return int(math.Floor(weight * pricePerKg))
}
