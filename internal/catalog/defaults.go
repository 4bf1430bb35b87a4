package catalog

import "github.com/osse101/FishingBot_Go/internal/domain"

// Item names of the built-in catalog.
const (
	ItemBasicRod        = "Basic Rod"
	ItemIntermediateRod = "Intermediate Rod"
	ItemAdvancedRod     = "Advanced Rod"
	ItemLegendaryRod    = "Legendary Rod"
	ItemBait            = "Bait"
)

func defaultItems() []domain.Item {
	return []domain.Item{
		{Name: ItemBasicRod, Price: 0, CatchBonus: 1.0, RareBonus: 0.0, Category: domain.CategoryRod, Starter: true,
			Description: "The rod everyone starts with. No bonuses."},
		{Name: ItemIntermediateRod, Price: 500, CatchBonus: 1.2, RareBonus: 0.1, Category: domain.CategoryRod,
			Description: "Improves catch rate and the odds of rare fish."},
		{Name: ItemAdvancedRod, Price: 1500, CatchBonus: 1.5, RareBonus: 0.2, Category: domain.CategoryRod,
			Description: "Greatly improves catch rate and the odds of rare fish."},
		{Name: ItemLegendaryRod, Price: 5000, CatchBonus: 2.0, RareBonus: 0.3, Category: domain.CategoryRod,
			Description: "Massively improves catch rate and the odds of legendary fish."},
		{Name: ItemBait, Price: 50, CatchBonus: 1.1, RareBonus: 0.05, Category: domain.CategoryConsumable,
			Description: "Single use. Slightly improves catch rate and rarity for one cast."},
	}
}

func defaultRarityRates() map[domain.Rarity]float64 {
	return map[domain.Rarity]float64{
		domain.RarityCommon:    0.6,
		domain.RarityRare:      0.25,
		domain.RarityEpic:      0.12,
		domain.RarityLegendary: 0.03,
		domain.RarityJunk:      0.1,
	}
}

func defaultSpecies() map[domain.Rarity][]domain.Species {
	return map[domain.Rarity][]domain.Species{
		domain.RarityCommon: {
			{Name: "Minnow", MinWeight: 0.1, MaxWeight: 0.5, PricePerKg: 10, Emoji: "🐠"},
			{Name: "Carp", MinWeight: 0.3, MaxWeight: 1.2, PricePerKg: 15, Emoji: "🐟"},
			{Name: "Grass Carp", MinWeight: 0.5, MaxWeight: 1.5, PricePerKg: 12, Emoji: "🐡"},
		},
		domain.RarityRare: {
			{Name: "Sea Bream", MinWeight: 0.8, MaxWeight: 2.0, PricePerKg: 30, Emoji: "🐡"},
			{Name: "Sea Bass", MinWeight: 1.0, MaxWeight: 2.5, PricePerKg: 35, Emoji: "🐟"},
			{Name: "Grouper", MinWeight: 1.2, MaxWeight: 3.0, PricePerKg: 40, Emoji: "🦈"},
		},
		domain.RarityEpic: {
			{Name: "Salmon", MinWeight: 2.0, MaxWeight: 4.0, PricePerKg: 60, Emoji: "🍣"},
			{Name: "Tuna", MinWeight: 3.0, MaxWeight: 6.0, PricePerKg: 80, Emoji: "🐟"},
			{Name: "Swordfish", MinWeight: 4.0, MaxWeight: 8.0, PricePerKg: 100, Emoji: "🗡️"},
		},
		domain.RarityLegendary: {
			{Name: "Arowana", MinWeight: 5.0, MaxWeight: 10.0, PricePerKg: 200, Emoji: "🐉"},
			{Name: "Shark", MinWeight: 8.0, MaxWeight: 15.0, PricePerKg: 250, Emoji: "🦈"},
			{Name: "Golden Fish", MinWeight: 1.0, MaxWeight: 3.0, PricePerKg: 500, Emoji: "🌟"},
		},
		domain.RarityJunk: {
			{Name: "Old Boot", MinWeight: 0.1, MaxWeight: 0.5, PricePerKg: 1, Emoji: "👟"},
		},
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultItems(), defaultRarityRates(), defaultSpecies())
	if err != nil {
		// the literals above are validated by tests
		panic(err)
	}
	return c
}
