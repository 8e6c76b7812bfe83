package domain

// MinimumPaymentRule is the issuer's minimum-payment formula:
// max(Floor, Percent% of balance [+ interest when PlusInterest]).
type MinimumPaymentRule struct {
	Percent      float64
	Floor        float64
	PlusInterest bool
}

type CreditCardInput struct {
	Balance        float64
	InterestRate   float64
	MinimumPayment MinimumPaymentRule
	// FixedPayment adds a second scenario paying this amount every month.
	FixedPayment float64
}

type CreditCardPayoffResult struct {
	MinimumOnly     AmortizationSchedule
	Fixed           *AmortizationSchedule `json:",omitempty"`
	InterestSavings float64
	MonthsSaved     int
}
