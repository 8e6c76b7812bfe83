package domain

import "time"

// LoanTerms describes a single amortizing loan.
type LoanTerms struct {
	Principal          float64
	AnnualInterestRate float64 // porcentaje anual, 5 = 5%
	TermMonths         int
	ExtraPayment       float64
	// MonthlyPayment overrides the formula payment when greater than zero.
	MonthlyPayment float64
	StartDate      time.Time
}

// MonthlySnapshot is one month of a schedule for one loan or debt.
type MonthlySnapshot struct {
	Month           int
	Date            *time.Time `json:",omitempty"`
	StartingBalance float64
	Payment         float64
	InterestPaid    float64
	PrincipalPaid   float64
	EndingBalance   float64
}

type AmortizationSchedule struct {
	MonthlyPayment    float64
	Schedule          []MonthlySnapshot
	TotalMonths       int
	TotalInterestPaid float64
	TotalPaid         float64
	PayoffDate        *time.Time `json:",omitempty"`
}

type RemainingBalanceInput struct {
	Loan          LoanTerms
	MonthsElapsed int
}

type RemainingBalanceResult struct {
	MonthsElapsed int
	Balance       float64
}

type PaymentResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}
