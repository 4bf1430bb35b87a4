package domain

import "fmt"

// Rarity is one of the fixed reward buckets a catch falls into.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityJunk      Rarity = "junk"
)

// Rarities is the canonical enumeration order. Cumulative sampling walks the
// tiers in this order, so the last tier absorbs any floating-point slack.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityJunk}

// ParseRarity converts a tier name into a Rarity.
func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

// Valid reports whether r is one of the enumerated tiers.
func (r Rarity) Valid() bool {
	_, err := ParseRarity(string(r))
	return err == nil
}

// Species is a catchable fish (or piece of junk) owned by exactly one tier.
type Species struct {
	Name       string  `json:"name" yaml:"name" validate:"required"`
	Rarity     Rarity  `json:"rarity" yaml:"-"`
	MinWeight  float64 `json:"min_kg" yaml:"min_kg" validate:"gt=0"`
	MaxWeight  float64 `json:"max_kg" yaml:"max_kg" validate:"gtefield=MinWeight"`
	PricePerKg float64 `json:"price_per_kg" yaml:"price_per_kg" validate:"gt=0"`
	Emoji      string  `json:"emoji" yaml:"emoji"`
}
