package service

import (
	"math"

	"github.com/shopspring/decimal"

	"payoff-engine/domain"
)

// roundTo2Decimals rounds a money amount to cents. Only called when a
// value leaves the engine; balances are carried unrounded month to month.
func roundTo2Decimals(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.InvalidInput(field, "must be a finite number")
	}
	if v < 0 {
		return domain.InvalidInput(field, "must not be negative, got %v", v)
	}
	return nil
}
