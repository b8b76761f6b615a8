package payoff

import (
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Compare runs both strategies on identical inputs and reports what
// choosing avalanche saves over snowball. Exposed as a first-class result
// so callers never recompute the comparison ad hoc.
func Compare(debts []model.Debt, extraCents int64, start time.Time) (*model.StrategyComparison, error) {
	snowball, err := Snowball(debts, extraCents, start)
	if err != nil {
		return nil, err
	}

	avalanche, err := Avalanche(debts, extraCents, start)
	if err != nil {
		return nil, err
	}

	return &model.StrategyComparison{
		Snowball:           snowball,
		Avalanche:          avalanche,
		InterestSavedCents: snowball.TotalInterestCents - avalanche.TotalInterestCents,
		MonthsSaved:        snowball.Months - avalanche.Months,
	}, nil
}
