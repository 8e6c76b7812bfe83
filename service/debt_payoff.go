package service

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"payoff-engine/domain"
)

// debtState is the simulator's working copy of one debt.
type debtState struct {
	debt    domain.Debt
	balance float64
	rate    float64 // tasa mensual
	months  []rawMonth
	paidOff int
}

// priorityFunc orders two active debts; negative means a goes first.
type priorityFunc = func(a, b *debtState) int

func priorityFor(strategy domain.Strategy) (priorityFunc, error) {
	switch strategy {
	case domain.Avalanche:
		return func(a, b *debtState) int {
			return cmp.Compare(b.debt.InterestRate, a.debt.InterestRate)
		}, nil
	case domain.Snowball:
		return func(a, b *debtState) int {
			return cmp.Compare(a.balance, b.balance)
		}, nil
	}
	return nil, domain.InvalidInput("strategy", "unknown strategy %d", int(strategy))
}

func validateDebts(debts []domain.Debt, extraPayment float64) error {
	for i, d := range debts {
		field := fmt.Sprintf("debts[%d]", i)
		if err := checkAmount(field+".balance", d.Balance); err != nil {
			return err
		}
		if err := checkAmount(field+".interestRate", d.InterestRate); err != nil {
			return err
		}
		if err := checkAmount(field+".minimumPayment", d.MinimumPayment); err != nil {
			return err
		}
	}
	return checkAmount("extraPayment", extraPayment)
}

// CalculateDebtPayoff pays all debts down together. Every active debt is
// charged its minimum; the rest of the monthly budget (extra payment plus
// the minimums of debts already retired) goes to debts in strategy order,
// cascading to the next debt within the same month.
func CalculateDebtPayoff(
	debts []domain.Debt,
	strategy domain.Strategy,
	extraPayment float64,
	startDate time.Time,
) (domain.PayoffResult, error) {
	if err := validateDebts(debts, extraPayment); err != nil {
		return domain.PayoffResult{}, err
	}
	priority, err := priorityFor(strategy)
	if err != nil {
		return domain.PayoffResult{}, err
	}

	states := make([]*debtState, len(debts))
	var active []*debtState
	budget := extraPayment
	firstInterest := 0.0
	for i, d := range debts {
		st := &debtState{debt: d, balance: d.Balance, rate: monthlyRate(d.InterestRate)}
		states[i] = st
		if d.Balance > 0 {
			active = append(active, st)
			budget += d.MinimumPayment
			firstInterest += d.Balance * st.rate
		}
	}

	// Con este presupuesto el saldo total nunca baja
	if len(active) > 0 && budget <= firstInterest {
		return domain.PayoffResult{}, domain.NonConverging("minimumPayment",
			"monthly budget %.2f does not cover monthly interest %.2f", budget, firstInterest)
	}

	var (
		summaries []domain.MonthSummary
		order     []string
	)
	month := 0
	for len(active) > 0 {
		month++
		if month > MaxDebtPayoffMonths {
			return domain.PayoffResult{}, domain.NonConverging("debts",
				"debts not retired after %d months", MaxDebtPayoffMonths)
		}

		summary, next, err := simulateMonth(active, priority, budget)
		if err != nil {
			return domain.PayoffResult{}, err
		}
		summary.Month = month
		for _, st := range active {
			if st.balance == 0 {
				st.paidOff = month
				order = append(order, st.debt.Name)
			}
		}
		summaries = append(summaries, summary)
		active = next
	}

	return buildPayoffResult(strategy, states, summaries, order, month, startDate), nil
}

// simulateMonth applies one month to the active debts and returns the
// month's summary along with the debts still owing.
func simulateMonth(active []*debtState, priority priorityFunc, budget float64) (domain.MonthSummary, []*debtState, error) {
	ordered := slices.Clone(active)
	slices.SortStableFunc(ordered, priority)

	interest := make(map[*debtState]float64, len(active))
	payment := make(map[*debtState]float64, len(active))

	// Primera pasada: intereses y pagos mínimos
	spent := 0.0
	for _, st := range active {
		i := st.balance * st.rate
		interest[st] = i
		p := math.Min(st.debt.MinimumPayment, st.balance+i)
		payment[st] = p
		spent += p
	}

	// Segunda pasada: el excedente va en cascada según la estrategia
	pool := budget - spent
	for _, st := range ordered {
		if pool <= moneyEpsilon {
			break
		}
		owed := st.balance + interest[st] - payment[st]
		if owed <= 0 {
			continue
		}
		p := math.Min(pool, owed)
		payment[st] += p
		pool -= p
	}

	summary := domain.MonthSummary{FocusDebt: ordered[0].debt.Name}
	var next []*debtState
	var totalPaid, totalInterest, remaining float64
	for _, st := range active {
		i, p := interest[st], payment[st]
		end := st.balance + i - p
		if end < DebtBalanceTolerance {
			p = st.balance + i
			end = 0
		}
		if math.IsInf(end, 0) || math.IsNaN(end) {
			return domain.MonthSummary{}, nil, domain.NonConverging("debts", "balance of %q diverges", st.debt.Name)
		}
		st.months = append(st.months, rawMonth{
			start:     st.balance,
			payment:   p,
			interest:  i,
			principal: p - i,
			end:       end,
		})
		st.balance = end
		totalPaid += p
		totalInterest += i
		remaining += end
		if end > 0 {
			next = append(next, st)
		}
	}

	summary.TotalPayment = totalPaid
	summary.TotalInterest = totalInterest
	summary.RemainingBalance = remaining
	return summary, next, nil
}

func buildPayoffResult(
	strategy domain.Strategy,
	states []*debtState,
	summaries []domain.MonthSummary,
	order []string,
	months int,
	startDate time.Time,
) domain.PayoffResult {
	result := domain.PayoffResult{
		Strategy:    strategy,
		Debts:       make([]domain.DebtPayoff, 0, len(states)),
		Months:      make([]domain.MonthSummary, 0, len(summaries)),
		PayoffOrder: order,
		TotalMonths: months,
		PayoffDate:  dateOf(startDate, months),
	}
	if result.PayoffOrder == nil {
		result.PayoffOrder = []string{}
	}

	var totalInterest, totalPaid float64
	for _, st := range states {
		dp := domain.DebtPayoff{
			Name:            st.debt.Name,
			StartingBalance: roundTo2Decimals(st.debt.Balance),
			InterestRate:    st.debt.InterestRate,
			MinimumPayment:  roundTo2Decimals(st.debt.MinimumPayment),
			Schedule:        make([]domain.MonthlySnapshot, 0, len(st.months)),
			PayoffMonth:     st.paidOff,
		}
		var interest, paid float64
		for i, m := range st.months {
			dp.Schedule = append(dp.Schedule, snapshotOf(i+1, m, startDate))
			interest += m.interest
			paid += m.payment
		}
		dp.TotalInterestPaid = roundTo2Decimals(interest)
		dp.TotalPaid = roundTo2Decimals(paid)
		totalInterest += interest
		totalPaid += paid
		result.Debts = append(result.Debts, dp)
	}
	result.TotalInterestPaid = roundTo2Decimals(totalInterest)
	result.TotalPaid = roundTo2Decimals(totalPaid)

	for _, s := range summaries {
		s.TotalPayment = roundTo2Decimals(s.TotalPayment)
		s.TotalInterest = roundTo2Decimals(s.TotalInterest)
		s.RemainingBalance = roundTo2Decimals(s.RemainingBalance)
		result.Months = append(result.Months, s)
	}
	return result
}
