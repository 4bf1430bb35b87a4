package domain

// Bonuses is the combined equipment effect for a single cast.
type Bonuses struct {
	CatchBonus float64 `json:"catch_bonus"`
	RareBonus  float64 `json:"rare_bonus"`
}

// Catch is what came out of the water.
type Catch struct {
	Species Species `json:"species"`
	Rarity  Rarity  `json:"rarity"`
	Weight  float64 `json:"weight_kg"`
	Price   int     `json:"price"`
}

// CastResult is everything a presenter needs to render one attempt.
type CastResult struct {
	PlayerID      string  `json:"player_id"`
	Rod           string  `json:"rod"`
	UsedBait      bool    `json:"used_bait"`
	Bait          string  `json:"bait,omitempty"`
	BaitRemaining int     `json:"bait_remaining"`
	Bonuses       Bonuses `json:"bonuses"`
	SuccessRate   float64 `json:"success_rate"`
	Success       bool    `json:"success"`
	Catch         *Catch  `json:"catch,omitempty"`
	Money         int     `json:"money"`
	TotalCatches  int     `json:"total_catches"`
}

// PurchaseResult reports a completed purchase.
type PurchaseResult struct {
	Item     string `json:"item"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"` // units now held
	Money    int    `json:"money"`
}
