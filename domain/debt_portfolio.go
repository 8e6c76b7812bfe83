package domain

import "time"

type Debt struct {
	Name           string
	Balance        float64
	InterestRate   float64 // porcentaje anual
	MinimumPayment float64
}

type DebtPayoffInput struct {
	Debts        []Debt
	Strategy     Strategy
	ExtraPayment float64
	StartDate    time.Time
}

// DebtPayoff is the per-debt outcome of a payoff simulation.
type DebtPayoff struct {
	Name              string
	StartingBalance   float64
	InterestRate      float64
	MinimumPayment    float64
	Schedule          []MonthlySnapshot
	PayoffMonth       int
	TotalInterestPaid float64
	TotalPaid         float64
}

// MonthSummary aggregates one simulated month across all debts.
type MonthSummary struct {
	Month            int
	FocusDebt        string
	TotalPayment     float64
	TotalInterest    float64
	RemainingBalance float64
}

type PayoffResult struct {
	Strategy          Strategy
	Debts             []DebtPayoff
	Months            []MonthSummary
	PayoffOrder       []string
	TotalMonths       int
	TotalInterestPaid float64
	TotalPaid         float64
	PayoffDate        *time.Time `json:",omitempty"`
}

type ComparisonInput struct {
	Debts        []Debt
	ExtraPayment float64
	StartDate    time.Time
}

type ComparisonResult struct {
	Avalanche       PayoffResult
	Snowball        PayoffResult
	InterestSavings float64
	MonthsSaved     int
	Recommended     Strategy
}
