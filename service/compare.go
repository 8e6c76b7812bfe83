package service

import (
	"time"

	"payoff-engine/domain"
)

// ComparePayoffStrategies simulates the same debts under avalanche and
// snowball. Each run works on its own copy of the balances.
func ComparePayoffStrategies(debts []domain.Debt, extraPayment float64, startDate time.Time) (domain.ComparisonResult, error) {
	avalanche, err := CalculateDebtPayoff(copyDebts(debts), domain.Avalanche, extraPayment, startDate)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	snowball, err := CalculateDebtPayoff(copyDebts(debts), domain.Snowball, extraPayment, startDate)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	result := domain.ComparisonResult{
		Avalanche:       avalanche,
		Snowball:        snowball,
		InterestSavings: roundTo2Decimals(snowball.TotalInterestPaid - avalanche.TotalInterestPaid),
		MonthsSaved:     snowball.TotalMonths - avalanche.TotalMonths,
		Recommended:     domain.Avalanche,
	}
	if snowball.TotalInterestPaid < avalanche.TotalInterestPaid {
		result.Recommended = domain.Snowball
	}
	return result, nil
}

func copyDebts(debts []domain.Debt) []domain.Debt {
	out := make([]domain.Debt, len(debts))
	copy(out, debts)
	return out
}
