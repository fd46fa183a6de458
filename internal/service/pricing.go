package service

import (
	"math"
	"time"
)

// DefaultMarginPercent is applied when no margin record exists for the
// resolved prior period.
const DefaultMarginPercent = 50.0

// PsychologicalPrice converts a price to the ".99" convention:
// prices of 100 and above round to the nearest whole dollar minus one cent,
// smaller prices round to the nearest x.99. Rounding of the fractional
// dollar is half-away-from-zero (math.Round), i.e. half-up for the positive
// prices this engine produces.
//
//	1234.40 -> 1233.99
//	  45.30 ->   45.99
//	 100.00 ->   99.99
//	   0.50 ->    0.99
func PsychologicalPrice(price float64) float64 {
	if price >= 100 {
		return math.Round(price) - 0.01
	}
	return math.Round(price-0.01) + 0.99
}

// MarginPeriodKey resolves the margin history key applicable at the given
// time: the previous calendar month, computed as thirty days back and
// formatted like "March 2024". The rule is fixed so that it always matches
// how operators key historical revenue entries.
func MarginPeriodKey(at time.Time) string {
	return at.AddDate(0, 0, -30).Format("January 2006")
}
