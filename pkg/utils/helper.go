package utils

import (
	"math"
)

// Round2 rounds a currency amount to 2 decimal places for display.
// Stored values keep full precision; only formatted output is rounded.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
