package fishing

import (
	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

// ResolveBonuses combines the equipped rod with at most one held consumable
// into the bonuses for a single cast. The consumable is taken out of the
// player's inventory here, before the cast is rolled, so it is spent whether
// or not anything bites. It returns the consumable used, or "".
//
// A rod that the catalog no longer knows about casts with the starter rod's
// bonuses.
func ResolveBonuses(cat *catalog.Catalog, p *domain.Player) (domain.Bonuses, string) {
	rod, ok := cat.Item(p.CurrentRod)
	if !ok || !rod.IsRod() {
		rod = cat.Starter()
	}

	bonuses := domain.Bonuses{
		CatchBonus: rod.CatchBonus,
		RareBonus:  rod.RareBonus,
	}

	for _, name := range cat.Consumables() {
		if !p.ConsumeItem(name) {
			continue
		}
		bait, _ := cat.Item(name)
		bonuses.CatchBonus *= bait.CatchBonus
		bonuses.RareBonus += bait.RareBonus
		return bonuses, name
	}

	return bonuses, ""
}
