package fishing

import (
	"math"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// AdjustedRates returns the sampling table for one cast. It never touches base.
//
// A positive rareBonus shifts weight toward the upper tiers and withdraws the
// same total from common (up to 70% of it) and then junk. The result is
// clamped and renormalized to sum to 1.
func AdjustedRates(base map[domain.Rarity]float64, rareBonus float64) map[domain.Rarity]float64 {
	w := make(map[domain.Rarity]float64, len(domain.Rarities))
	for _, r := range domain.Rarities {
		w[r] = base[r]
	}

	if rareBonus > 0 {
		legendary := domain.LegendaryBoostShare * rareBonus
		epic := domain.EpicBoostShare * rareBonus
		rare := domain.RareBoostShare * rareBonus
		w[domain.RarityLegendary] += legendary
		w[domain.RarityEpic] += epic
		w[domain.RarityRare] += rare

		deduction := legendary + epic + rare
		fromCommon := math.Min(w[domain.RarityCommon], deduction*domain.CommonDeductShare)
		w[domain.RarityCommon] -= fromCommon

		remaining := deduction - fromCommon
		w[domain.RarityJunk] -= math.Min(w[domain.RarityJunk], remaining)
	}

	total := 0.0
	for _, r := range domain.Rarities {
		if w[r] < 0 || math.IsNaN(w[r]) {
			w[r] = 0
		}
		total += w[r]
	}

	if total == 0 {
		out := make(map[domain.Rarity]float64, len(domain.Rarities))
		for _, r := range domain.Rarities {
			out[r] = 0
		}
		out[domain.RarityCommon] = 1
		return out
	}

	for _, r := range domain.Rarities {
		w[r] /= total
	}
	return w
}

// SelectRarity walks the tiers in their fixed order and returns the first
// whose cumulative weight reaches u. Drift that leaves u uncovered yields common.
func SelectRarity(rates map[domain.Rarity]float64, u float64) domain.Rarity {
	cumulative := 0.0
	for _, r := range domain.Rarities {
		cumulative += rates[r]
		if cumulative >= u {
			return r
		}
	}
	return domain.RarityCommon
}
