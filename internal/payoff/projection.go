package payoff

import (
	"github.com/pennyflow/pennyflow/internal/model"
)

// Project estimates payoff time for a single debt with an extra monthly
// payment, without the multi-debt allocation machinery. It uses the same
// interest accrual formula and the same 600-month safety cap as Simulate.
func Project(debt model.Debt, extraCents int64) model.Projection {
	balance := debt.BalanceCents
	var proj model.Projection

	for balance > 0 && proj.Months < maxMonths {
		proj.Months++

		interest := monthlyInterest(balance, debt.InterestRate)
		required := maxCents(debt.MinimumPaymentCents, roundCents(float64(balance)*minimumFloor))
		payment := maxCents(debt.MonthlyPaymentCents, required) + extraCents

		balance += interest
		if payment > balance {
			payment = balance
		}
		balance -= payment

		proj.TotalInterestCents += minCents(payment, interest)
	}

	proj.PaidOff = balance == 0
	return proj
}
