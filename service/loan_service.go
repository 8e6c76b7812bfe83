package service

import (
	"payoff-engine/domain"
	"payoff-engine/repository"
)

type LoanService struct {
	calculator
}

// NewLoanService creates a new LoanService. cache and history may be nil.
func NewLoanService(cache repository.CacheRepository,
	history repository.HistoryRepository,
) *LoanService {
	return &LoanService{calculator: newCalculator(cache, history)}
}

// checkLoanLimits rejects requests beyond what the service is willing to
// simulate.
func checkLoanLimits(terms domain.LoanTerms) error {
	if terms.Principal > MaxLoanAmount {
		return domain.InvalidInput("principal", "exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if terms.AnnualInterestRate > MaxInterestRate {
		return domain.InvalidInput("annualInterestRate", "exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if terms.TermMonths > MaxTermMonths {
		return domain.InvalidInput("termMonths", "exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// CalculateLoan returns the level payment and the totals paid over the term.
func (s *LoanService) CalculateLoan(terms domain.LoanTerms) (domain.PaymentResult, error) {
	if err := checkLoanLimits(terms); err != nil {
		return domain.PaymentResult{}, err
	}

	result, err := cached(s.calculator, domain.KindLoanPayment, terms, func() (domain.PaymentResult, error) {
		return paymentSummary(terms)
	})
	if err != nil {
		return domain.PaymentResult{}, err
	}

	s.record(domain.KindLoanPayment, terms.TermMonths, result.TotalInterest)
	return result, nil
}

// Amortization returns the month-by-month schedule for the loan.
func (s *LoanService) Amortization(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	if err := checkLoanLimits(terms); err != nil {
		return domain.AmortizationSchedule{}, err
	}

	result, err := cached(s.calculator, domain.KindAmortization, terms, func() (domain.AmortizationSchedule, error) {
		return CalculateLoanAmortization(terms)
	})
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	s.record(domain.KindAmortization, result.TotalMonths, result.TotalInterestPaid)
	return result, nil
}

func (s *LoanService) RemainingBalance(input domain.RemainingBalanceInput) (domain.RemainingBalanceResult, error) {
	if err := checkLoanLimits(input.Loan); err != nil {
		return domain.RemainingBalanceResult{}, err
	}

	balance, err := CalculateRemainingBalance(input.Loan, input.MonthsElapsed)
	if err != nil {
		return domain.RemainingBalanceResult{}, err
	}

	s.record(domain.KindRemainingBalance, input.MonthsElapsed, 0)
	return domain.RemainingBalanceResult{
		MonthsElapsed: input.MonthsElapsed,
		Balance:       balance,
	}, nil
}

// paymentSummary prices the loan over its full term without extra payments.
func paymentSummary(terms domain.LoanTerms) (domain.PaymentResult, error) {
	cuota, err := CalculateMonthlyPayment(terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	total := monthlyPayment(terms.Principal, terms.AnnualInterestRate, terms.TermMonths) * float64(terms.TermMonths)
	return domain.PaymentResult{
		MonthlyPayment: cuota,
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - terms.Principal),
	}, nil
}
