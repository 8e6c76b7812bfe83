package service

import (
	"math"
	"time"

	"payoff-engine/domain"
)

func validateCreditCard(input domain.CreditCardInput) error {
	checks := []struct {
		field string
		value float64
	}{
		{"balance", input.Balance},
		{"interestRate", input.InterestRate},
		{"minimumPayment.percent", input.MinimumPayment.Percent},
		{"minimumPayment.floor", input.MinimumPayment.Floor},
		{"fixedPayment", input.FixedPayment},
	}
	for _, c := range checks {
		if err := checkAmount(c.field, c.value); err != nil {
			return err
		}
	}
	return nil
}

// CalculateCreditCardPayoff compares paying only the card's minimum each
// month against a fixed monthly payment, when one is given.
func CalculateCreditCardPayoff(input domain.CreditCardInput) (domain.CreditCardPayoffResult, error) {
	if err := validateCreditCard(input); err != nil {
		return domain.CreditCardPayoffResult{}, err
	}

	steps, err := minimumOnlyMonths(input)
	if err != nil {
		return domain.CreditCardPayoffResult{}, err
	}
	first := 0.0
	if len(steps) > 0 {
		first = steps[0].payment
	}
	result := domain.CreditCardPayoffResult{
		MinimumOnly: buildSchedule(steps, first, time.Time{}),
	}

	if input.FixedPayment > 0 {
		a := &amortizer{
			balance: input.Balance,
			rate:    monthlyRate(input.InterestRate),
			payment: input.FixedPayment,
		}
		fixedSteps, err := runAmortizer(a)
		if err != nil {
			return domain.CreditCardPayoffResult{}, err
		}
		fixed := buildSchedule(fixedSteps, input.FixedPayment, time.Time{})
		result.Fixed = &fixed
		result.InterestSavings = roundTo2Decimals(result.MinimumOnly.TotalInterestPaid - fixed.TotalInterestPaid)
		result.MonthsSaved = result.MinimumOnly.TotalMonths - fixed.TotalMonths
	}
	return result, nil
}

// minimumPayment applies the issuer rule to the current balance.
func minimumPayment(rule domain.MinimumPaymentRule, balance, interest float64) float64 {
	p := balance * rule.Percent / 100
	if rule.PlusInterest {
		p += interest
	}
	return math.Max(p, rule.Floor)
}

func minimumOnlyMonths(input domain.CreditCardInput) ([]rawMonth, error) {
	rate := monthlyRate(input.InterestRate)
	balance := input.Balance

	var steps []rawMonth
	for balance > 0 {
		if len(steps) >= MaxScheduleMonths {
			return nil, domain.NonConverging("minimumPayment",
				"minimum payments do not retire the balance within %d months", MaxScheduleMonths)
		}
		interest := balance * rate
		owed := balance + interest
		p := minimumPayment(input.MinimumPayment, balance, interest)
		if p >= owed || owed-p < DebtBalanceTolerance {
			p = owed
		}
		if p <= interest {
			return nil, domain.NonConverging("minimumPayment",
				"minimum payment %.2f does not cover monthly interest %.2f", p, interest)
		}
		steps = append(steps, rawMonth{
			start:     balance,
			payment:   p,
			interest:  interest,
			principal: p - interest,
			end:       owed - p,
		})
		balance = owed - p
	}
	return steps, nil
}
