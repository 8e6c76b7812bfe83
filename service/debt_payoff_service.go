package service

import (
	"fmt"

	"payoff-engine/domain"
	"payoff-engine/repository"
)

type DebtPayoffService struct {
	calculator
}

func NewDebtPayoffService(cache repository.CacheRepository,
	history repository.HistoryRepository,
) *DebtPayoffService {
	return &DebtPayoffService{calculator: newCalculator(cache, history)}
}

func checkDebtLimits(debts []domain.Debt) error {
	if len(debts) > MaxDebtsPerRequest {
		return domain.InvalidInput("debts", "more than %d debts", MaxDebtsPerRequest)
	}
	for i, d := range debts {
		if d.Balance > MaxDebtAmount {
			return domain.InvalidInput(fmt.Sprintf("debts[%d].balance", i), "exceeds the maximum of %.2f", MaxDebtAmount)
		}
		if d.InterestRate > MaxInterestRate {
			return domain.InvalidInput(fmt.Sprintf("debts[%d].interestRate", i), "exceeds the maximum of %.2f%%", MaxInterestRate)
		}
	}
	return nil
}

// CalculateDebtPayoff runs the payoff simulation for a single strategy.
func (s *DebtPayoffService) CalculateDebtPayoff(input domain.DebtPayoffInput) (domain.PayoffResult, error) {
	if err := checkDebtLimits(input.Debts); err != nil {
		return domain.PayoffResult{}, err
	}

	result, err := cached(s.calculator, domain.KindDebtPayoff, input, func() (domain.PayoffResult, error) {
		return CalculateDebtPayoff(input.Debts, input.Strategy, input.ExtraPayment, input.StartDate)
	})
	if err != nil {
		return domain.PayoffResult{}, err
	}

	s.record(domain.KindDebtPayoff, result.TotalMonths, result.TotalInterestPaid)
	return result, nil
}

// CompareStrategies runs avalanche and snowball side by side.
func (s *DebtPayoffService) CompareStrategies(input domain.ComparisonInput) (domain.ComparisonResult, error) {
	if err := checkDebtLimits(input.Debts); err != nil {
		return domain.ComparisonResult{}, err
	}

	result, err := cached(s.calculator, domain.KindComparison, input, func() (domain.ComparisonResult, error) {
		return ComparePayoffStrategies(input.Debts, input.ExtraPayment, input.StartDate)
	})
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	s.record(domain.KindComparison, result.Avalanche.TotalMonths, result.Avalanche.TotalInterestPaid)
	return result, nil
}

func (s *DebtPayoffService) CreditCardPayoff(input domain.CreditCardInput) (domain.CreditCardPayoffResult, error) {
	if input.Balance > MaxDebtAmount {
		return domain.CreditCardPayoffResult{}, domain.InvalidInput("balance", "exceeds the maximum of %.2f", MaxDebtAmount)
	}
	if input.InterestRate > MaxInterestRate {
		return domain.CreditCardPayoffResult{}, domain.InvalidInput("interestRate", "exceeds the maximum of %.2f%%", MaxInterestRate)
	}

	result, err := cached(s.calculator, domain.KindCreditCard, input, func() (domain.CreditCardPayoffResult, error) {
		return CalculateCreditCardPayoff(input)
	})
	if err != nil {
		return domain.CreditCardPayoffResult{}, err
	}

	s.record(domain.KindCreditCard, result.MinimumOnly.TotalMonths, result.MinimumOnly.TotalInterestPaid)
	return result, nil
}
