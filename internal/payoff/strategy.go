// Package payoff simulates month-by-month debt amortization under snowball
// and avalanche prioritization strategies.
package payoff

import (
	"fmt"
	"sort"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// orderDebts returns working copies of the debts sorted by strategy
// priority. The input slice is never touched.
func orderDebts(debts []model.Debt, strategy model.Strategy) ([]model.Debt, error) {
	ordered := append([]model.Debt(nil), debts...)

	switch strategy {
	case model.StrategySnowball:
		// Smallest balance first
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].BalanceCents < ordered[j].BalanceCents
		})
	case model.StrategyAvalanche:
		// Highest interest rate first
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].InterestRate > ordered[j].InterestRate
		})
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidStrategy, strategy)
	}

	return ordered, nil
}

// Snowball simulates payoff with debts ordered smallest balance first.
func Snowball(debts []model.Debt, extraCents int64, start time.Time) (*model.PayoffPlan, error) {
	return Simulate(debts, extraCents, model.StrategySnowball, start)
}

// Avalanche simulates payoff with debts ordered highest rate first.
func Avalanche(debts []model.Debt, extraCents int64, start time.Time) (*model.PayoffPlan, error) {
	return Simulate(debts, extraCents, model.StrategyAvalanche, start)
}
