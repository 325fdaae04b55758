package features

import (
	"math"
	"strconv"
)

// DefaultDecimals is the precision predictions are reported with.
const DefaultDecimals = 1

// RoundPrediction rounds value to the given number of decimal places. The
// exact binary value is rounded, with exact ties going to even, so 2.675
// (stored just below 2.675) becomes 2.67. Negative decimals round to tens,
// hundreds, and so on. Non-finite input is returned unchanged.
func RoundPrediction(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	if decimals < 0 {
		p := math.Pow10(-decimals)
		if math.IsInf(p, 0) {
			return 0
		}
		return math.RoundToEven(value/p) * p
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
