package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatFixed formats a float with exactly places decimal digits, rounding half away from zero.
// Example: 1.70000000002 with places 4 returns "1.7000"
// Example: 5.88235 with places 1 returns "5.9"
func FormatFixed(value float64, places int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "NaN"
	}
	return decimal.NewFromFloat(value).StringFixed(places)
}

// FormatRate formats an exchange rate for display (4 decimal places).
func FormatRate(rate float64) string {
	return FormatFixed(rate, 4)
}

// FormatPercent formats a percentage for display (1 decimal place).
func FormatPercent(pct float64) string {
	return FormatFixed(pct, 1)
}
