package payoff

import (
	"math"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

const (
	// maxMonths caps simulation at 50 years. Inputs where payments never
	// outpace interest accrual would otherwise run forever.
	maxMonths = 600

	// minimumFloor approximates real card minimum-payment schedules when
	// the stated minimum is low: 2% of the remaining balance.
	minimumFloor = 0.02
)

// Simulate produces a deterministic month-by-month payoff schedule for the
// given debts under the chosen strategy. The input debts are never mutated;
// all arithmetic is integer cents with explicit rounding at each step.
//
// A plan that hits the safety cap with balance remaining has PaidOff false;
// that is a valid terminal state, not an error.
func Simulate(debts []model.Debt, extraCents int64, strategy model.Strategy, start time.Time) (*model.PayoffPlan, error) {
	ordered, err := orderDebts(debts, strategy)
	if err != nil {
		return nil, err
	}

	plan := &model.PayoffPlan{
		Strategy: strategy,
		Debts:    ordered,
		PaidOff:  true,
	}
	if len(ordered) == 0 {
		return plan, nil
	}

	// Base capacity is the sum of the stated monthly payments. It is not
	// reduced when a debt reaches zero: the freed payment rolls into the
	// remaining debts.
	var baseCents int64
	for _, d := range ordered {
		baseCents += d.MonthlyPaymentCents
	}

	// Simulate against a private balance ledger; plan.Debts keeps the
	// starting balances for display.
	balances := make([]int64, len(ordered))
	for i, d := range ordered {
		balances[i] = d.BalanceCents
	}

	for month := 1; month <= maxMonths && totalBalance(balances) > 0; month++ {
		interest := make([]int64, len(ordered))
		required := make([]int64, len(ordered))
		var sumRequired int64

		for i := range ordered {
			if balances[i] <= 0 {
				continue
			}
			interest[i] = monthlyInterest(balances[i], ordered[i].InterestRate)
			required[i] = maxCents(ordered[i].MinimumPaymentCents, roundCents(float64(balances[i])*minimumFloor))
			sumRequired += required[i]
		}

		available := maxCents(baseCents, sumRequired) + extraCents

		// Accrue before paying; a payment below this month's interest
		// grows the balance.
		for i := range ordered {
			balances[i] += interest[i]
		}

		// Every debt gets its required payment first, in strategy order.
		payments := make([]int64, len(ordered))
		for i := range ordered {
			if balances[i] <= 0 || available <= 0 {
				continue
			}
			pay := minCents(required[i], balances[i])
			pay = minCents(pay, available)
			payments[i] += pay
			balances[i] -= pay
			available -= pay
		}

		// Whatever is left goes to the top-priority debt still carrying a
		// balance: the snowball/avalanche rollover rule.
		for i := range ordered {
			if balances[i] <= 0 || available <= 0 {
				continue
			}
			pay := minCents(available, balances[i])
			payments[i] += pay
			balances[i] -= pay
			available -= pay
			break
		}

		entry := model.ScheduleMonth{
			MonthIndex: month,
			Date:       start.AddDate(0, month-1, 0),
		}
		for i := range ordered {
			if payments[i] == 0 {
				continue
			}
			interestPortion := minCents(payments[i], interest[i])
			entry.Payments = append(entry.Payments, model.DebtPayment{
				DebtID:              ordered[i].ID,
				DebtName:            ordered[i].Name,
				InterestCents:       interestPortion,
				PrincipalCents:      payments[i] - interestPortion,
				TotalPaidCents:      payments[i],
				RemainingAfterCents: balances[i],
			})
			entry.InterestCents += interestPortion
			plan.TotalInterestCents += interestPortion
		}
		entry.RemainingBalanceCents = totalBalance(balances)

		// A month with no payments at all carries no information.
		if len(entry.Payments) == 0 {
			break
		}
		plan.Schedule = append(plan.Schedule, entry)
	}

	plan.Months = len(plan.Schedule)
	plan.PaidOff = totalBalance(balances) == 0

	return plan, nil
}

// monthlyInterest computes one month of accrued interest in cents,
// rounded: round(balance x annualRate/100/12). Zero and negative rates
// accrue nothing; the debt reduces by principal only.
func monthlyInterest(balanceCents int64, annualRate float64) int64 {
	if balanceCents <= 0 || annualRate <= 0 {
		return 0
	}
	return roundCents(float64(balanceCents) * annualRate / 100 / 12)
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

func totalBalance(balances []int64) int64 {
	var total int64
	for _, b := range balances {
		if b > 0 {
			total += b
		}
	}
	return total
}

func minCents(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxCents(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
