package domain

// Fresh-start ledger values.
const (
	StartingMoney = 100
)

// Cast tuning.
const (
	BaseSuccessRate = 0.70
	MaxSuccessRate  = 0.95
)

// Rarity redistribution shares applied per unit of rare bonus. The remaining
// 0.1 share is intentionally not added to any tier.
const (
	LegendaryBoostShare = 0.4
	EpicBoostShare      = 0.3
	RareBoostShare      = 0.2
	CommonDeductShare   = 0.7
)

// PlatformDiscord identifies players coming from Discord interactions.
const PlatformDiscord = "discord"
