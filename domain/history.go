package domain

import "time"

type CalculationKind string

const (
	KindLoanPayment      CalculationKind = "loan_payment"
	KindAmortization     CalculationKind = "amortization"
	KindRemainingBalance CalculationKind = "remaining_balance"
	KindDebtPayoff       CalculationKind = "debt_payoff"
	KindComparison       CalculationKind = "comparison"
	KindCreditCard       CalculationKind = "credit_card"
	KindTermRecommend    CalculationKind = "term_recommendation"
)

// CalculationRecord is a history entry for a served calculation.
type CalculationRecord struct {
	ID          string
	Kind        CalculationKind
	CreatedAt   time.Time
	TotalMonths int
	// TotalInterest is the headline interest figure of the result.
	TotalInterest float64
}
