package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(value*p) / p
}

// Lerp maps u in [0, 1) onto [lo, hi].
func Lerp(lo, hi, u float64) float64 {
	return lo + (hi-lo)*u
}

// PickIndex maps u in [0, 1) to an index in [0, n). Out-of-range draws are
// clamped so a draw of exactly 1.0 still lands on the last element.
func PickIndex(n int, u float64) int {
	if n <= 0 {
		return 0
	}
	idx := int(u * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
