// Package money provides the numeric helpers shared by the transaction,
// goal and stats packages: fail-closed amount validation and presentation
// rounding.
package money

import (
	"errors"
	"math"
)

var ErrInvalidAmount = errors.New("amount must be a positive finite number")

// ParseAmount validates a monetary amount. It rejects NaN, infinities and
// non-positive values instead of letting them flow into stored documents.
func ParseAmount(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}

	if v <= 0 {
		return 0, ErrInvalidAmount
	}

	return v, nil
}

// Round2 rounds to two decimal places, half away from zero. Intermediate
// aggregation keeps full float64 precision; only values leaving the API are
// rounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
