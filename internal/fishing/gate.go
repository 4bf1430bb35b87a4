package fishing

import (
	"math"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// SuccessRate is the chance a cast hooks anything.
func SuccessRate(catchBonus float64) float64 {
	if catchBonus <= 0 || math.IsNaN(catchBonus) {
		return 0
	}
	return math.Min(domain.MaxSuccessRate, domain.BaseSuccessRate*catchBonus)
}

// Hooked reports whether draw passes the gate; a draw equal to the rate succeeds.
func Hooked(rate, draw float64) bool {
	return draw <= rate
}
