package service

import (
	"math"
	"time"

	"payoff-engine/domain"
)

// rawMonth is one simulated month before rounding.
type rawMonth struct {
	start     float64
	payment   float64
	interest  float64
	principal float64
	end       float64
}

// amortizer runs the fixed-payment recurrence for a single balance.
type amortizer struct {
	balance float64
	rate    float64 // tasa mensual
	payment float64
	month   int
}

func (a *amortizer) done() bool {
	return a.balance <= 0
}

// step simulates the next month. It fails when the payment cannot reduce
// the balance or the month cap is reached.
func (a *amortizer) step() (rawMonth, error) {
	if a.month >= MaxScheduleMonths {
		return rawMonth{}, domain.NonConverging("termMonths", "balance not retired after %d months", MaxScheduleMonths)
	}

	interest := a.balance * a.rate
	principal := a.payment - interest
	if principal <= 0 {
		return rawMonth{}, domain.NonConverging("payment",
			"payment %.2f does not cover monthly interest %.2f", a.payment, interest)
	}
	if principal > a.balance || a.balance-principal < DebtBalanceTolerance {
		principal = a.balance
	}

	m := rawMonth{
		start:     a.balance,
		payment:   interest + principal,
		interest:  interest,
		principal: principal,
		end:       a.balance - principal,
	}
	a.balance = m.end
	a.month++
	return m, nil
}

func monthlyRate(annualRate float64) float64 {
	return annualRate / 100 / 12
}

// monthlyPayment is the unrounded level payment for principal over n months.
func monthlyPayment(principal, annualRate float64, n int) float64 {
	if principal == 0 {
		return 0
	}
	r := monthlyRate(annualRate)
	if r == 0 {
		return principal / float64(n)
	}
	return principal * (r / (1 - math.Pow(1+r, -float64(n))))
}

func validateLoanTerms(terms domain.LoanTerms) error {
	if err := checkAmount("principal", terms.Principal); err != nil {
		return err
	}
	if err := checkAmount("annualInterestRate", terms.AnnualInterestRate); err != nil {
		return err
	}
	if terms.TermMonths <= 0 {
		return domain.InvalidInput("termMonths", "must be positive, got %d", terms.TermMonths)
	}
	if err := checkAmount("extraPayment", terms.ExtraPayment); err != nil {
		return err
	}
	return checkAmount("monthlyPayment", terms.MonthlyPayment)
}

func newAmortizer(terms domain.LoanTerms) *amortizer {
	return &amortizer{
		balance: terms.Principal,
		rate:    monthlyRate(terms.AnnualInterestRate),
		payment: basePayment(terms) + terms.ExtraPayment,
	}
}

func basePayment(terms domain.LoanTerms) float64 {
	if terms.MonthlyPayment > 0 {
		return terms.MonthlyPayment
	}
	return monthlyPayment(terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
}

// CalculateMonthlyPayment returns the level monthly payment that retires
// principal over termMonths at annualRate percent.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) (float64, error) {
	err := validateLoanTerms(domain.LoanTerms{
		Principal:          principal,
		AnnualInterestRate: annualRate,
		TermMonths:         termMonths,
	})
	if err != nil {
		return 0, err
	}
	return roundTo2Decimals(monthlyPayment(principal, annualRate, termMonths)), nil
}

// CalculateLoanAmortization simulates the loan month by month until the
// balance reaches zero and returns the full schedule.
func CalculateLoanAmortization(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	if err := validateLoanTerms(terms); err != nil {
		return domain.AmortizationSchedule{}, err
	}

	a := newAmortizer(terms)
	steps, err := runAmortizer(a)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}
	return buildSchedule(steps, basePayment(terms), terms.StartDate), nil
}

// CalculateRemainingBalance projects the balance after monthsElapsed
// payments. It agrees with EndingBalance of the same month in
// CalculateLoanAmortization.
func CalculateRemainingBalance(terms domain.LoanTerms, monthsElapsed int) (float64, error) {
	if err := validateLoanTerms(terms); err != nil {
		return 0, err
	}
	if monthsElapsed < 0 {
		return 0, domain.InvalidInput("monthsElapsed", "must not be negative, got %d", monthsElapsed)
	}

	a := newAmortizer(terms)
	for i := 0; i < monthsElapsed && !a.done(); i++ {
		if _, err := a.step(); err != nil {
			return 0, err
		}
	}
	return roundTo2Decimals(a.balance), nil
}

func runAmortizer(a *amortizer) ([]rawMonth, error) {
	var steps []rawMonth
	for !a.done() {
		m, err := a.step()
		if err != nil {
			return nil, err
		}
		steps = append(steps, m)
	}
	return steps, nil
}

// buildSchedule rounds raw months into snapshots. Totals are summed before
// rounding.
func buildSchedule(steps []rawMonth, payment float64, start time.Time) domain.AmortizationSchedule {
	out := domain.AmortizationSchedule{
		MonthlyPayment: roundTo2Decimals(payment),
		Schedule:       make([]domain.MonthlySnapshot, 0, len(steps)),
		TotalMonths:    len(steps),
	}

	var interest, paid float64
	for i, m := range steps {
		out.Schedule = append(out.Schedule, snapshotOf(i+1, m, start))
		interest += m.interest
		paid += m.payment
	}
	out.TotalInterestPaid = roundTo2Decimals(interest)
	out.TotalPaid = roundTo2Decimals(paid)
	out.PayoffDate = dateOf(start, len(steps))
	return out
}

func snapshotOf(month int, m rawMonth, start time.Time) domain.MonthlySnapshot {
	return domain.MonthlySnapshot{
		Month:           month,
		Date:            dateOf(start, month),
		StartingBalance: roundTo2Decimals(m.start),
		Payment:         roundTo2Decimals(m.payment),
		InterestPaid:    roundTo2Decimals(m.interest),
		PrincipalPaid:   roundTo2Decimals(m.principal),
		EndingBalance:   roundTo2Decimals(m.end),
	}
}

// dateOf returns the due date of the given month, or nil when no start
// date was supplied. Month 1 falls one month after start.
func dateOf(start time.Time, month int) *time.Time {
	if start.IsZero() || month <= 0 {
		return nil
	}
	d := start.AddDate(0, month, 0)
	return &d
}
