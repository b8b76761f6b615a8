package payoff

import (
	"errors"
	"testing"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simStart = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func creditCard() model.Debt {
	return model.Debt{
		ID:                  "cc-1",
		Name:                "Visa",
		BalanceCents:        300000,
		InterestRate:        19.99,
		MinimumPaymentCents: 5000,
		MonthlyPaymentCents: 10000,
	}
}

func TestSimulate_SingleDebtAmortization(t *testing.T) {
	plan, err := Simulate([]model.Debt{creditCard()}, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.True(t, plan.PaidOff)
	assert.Greater(t, plan.Months, 0)
	assert.Greater(t, plan.TotalInterestCents, int64(0))
	assert.Len(t, plan.Schedule, plan.Months)

	// First month: round(300000 x 19.99/1200) = 4998 cents of interest,
	// full $100 payment applied.
	first := plan.Schedule[0]
	require.Len(t, first.Payments, 1)
	assert.Equal(t, int64(4998), first.Payments[0].InterestCents)
	assert.Equal(t, int64(10000), first.Payments[0].TotalPaidCents)
	assert.Equal(t, int64(5002), first.Payments[0].PrincipalCents)
	assert.Equal(t, simStart, first.Date)
	assert.Equal(t, 1, first.MonthIndex)

	// Balance declines every month and ends at exactly zero.
	prev := int64(300000)
	for _, m := range plan.Schedule {
		assert.Less(t, m.RemainingBalanceCents, prev)
		prev = m.RemainingBalanceCents
	}
	assert.Zero(t, plan.Schedule[len(plan.Schedule)-1].RemainingBalanceCents)
}

func TestSimulate_StrategyOrdering(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "Card A", BalanceCents: 500000, InterestRate: 24.99, MinimumPaymentCents: 10000, MonthlyPaymentCents: 15000},
		{ID: "b", Name: "Card B", BalanceCents: 100000, InterestRate: 12.5, MinimumPaymentCents: 2500, MonthlyPaymentCents: 5000},
		{ID: "c", Name: "Loan C", BalanceCents: 300000, InterestRate: 6.0, MinimumPaymentCents: 5000, MonthlyPaymentCents: 7500},
	}

	snowball, err := Simulate(debts, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)
	for i := 0; i < len(snowball.Debts)-1; i++ {
		assert.LessOrEqual(t, snowball.Debts[i].BalanceCents, snowball.Debts[i+1].BalanceCents)
	}

	avalanche, err := Simulate(debts, 0, model.StrategyAvalanche, simStart)
	require.NoError(t, err)
	for i := 0; i < len(avalanche.Debts)-1; i++ {
		assert.GreaterOrEqual(t, avalanche.Debts[i].InterestRate, avalanche.Debts[i+1].InterestRate)
	}
}

func TestSimulate_AvalancheNeverPaysMoreInterest(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "Card A", BalanceCents: 500000, InterestRate: 24.99, MinimumPaymentCents: 10000, MonthlyPaymentCents: 15000},
		{ID: "b", Name: "Card B", BalanceCents: 100000, InterestRate: 12.5, MinimumPaymentCents: 2500, MonthlyPaymentCents: 5000},
		{ID: "c", Name: "Loan C", BalanceCents: 300000, InterestRate: 6.0, MinimumPaymentCents: 5000, MonthlyPaymentCents: 7500},
	}

	for _, extra := range []int64{0, 5000, 25000} {
		snowball, err := Snowball(debts, extra, simStart)
		require.NoError(t, err)
		avalanche, err := Avalanche(debts, extra, simStart)
		require.NoError(t, err)

		assert.LessOrEqual(t, avalanche.TotalInterestCents, snowball.TotalInterestCents,
			"extra=%d", extra)
	}
}

func TestSimulate_FreedPaymentRollsOver(t *testing.T) {
	// Two zero-interest debts with a combined $100/month budget. Once the
	// small debt clears, its payment keeps flowing to the other, so every
	// month moves exactly $100 and the total pays off in 25 months.
	debts := []model.Debt{
		{ID: "small", Name: "Small", BalanceCents: 50000, MinimumPaymentCents: 1000, MonthlyPaymentCents: 5000},
		{ID: "big", Name: "Big", BalanceCents: 200000, MinimumPaymentCents: 1000, MonthlyPaymentCents: 5000},
	}

	plan, err := Simulate(debts, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.True(t, plan.PaidOff)
	assert.Equal(t, 25, plan.Months)
	assert.Zero(t, plan.TotalInterestCents)

	for _, m := range plan.Schedule {
		var paid int64
		for _, p := range m.Payments {
			paid += p.TotalPaidCents
		}
		assert.Equal(t, int64(10000), paid, "month %d", m.MonthIndex)
	}
}

func TestSimulate_SafetyCap(t *testing.T) {
	// 36% APR accrues 3% a month while the payment floor moves only 2%.
	// The balance grows and the cap stops the simulation.
	hopeless := model.Debt{
		ID:           "h",
		Name:         "Hopeless",
		BalanceCents: 100000,
		InterestRate: 36,
	}

	plan, err := Simulate([]model.Debt{hopeless}, 0, model.StrategyAvalanche, simStart)
	require.NoError(t, err)

	assert.False(t, plan.PaidOff)
	assert.Equal(t, maxMonths, plan.Months)
	assert.Greater(t, plan.Schedule[len(plan.Schedule)-1].RemainingBalanceCents, hopeless.BalanceCents)
}

func TestSimulate_LargeBalanceNeverExceedsCap(t *testing.T) {
	debt := model.Debt{
		ID:                  "huge",
		Name:                "Huge",
		BalanceCents:        100000000,
		InterestRate:        19.99,
		MinimumPaymentCents: 1000,
	}

	plan, err := Simulate([]model.Debt{debt}, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)
	assert.LessOrEqual(t, plan.Months, maxMonths)
}

func TestSimulate_ZeroInterest(t *testing.T) {
	debt := model.Debt{
		ID:                  "z",
		Name:                "Zero",
		BalanceCents:        120000,
		MinimumPaymentCents: 1000,
		MonthlyPaymentCents: 10000,
	}

	plan, err := Simulate([]model.Debt{debt}, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.True(t, plan.PaidOff)
	assert.Equal(t, 12, plan.Months)
	assert.Zero(t, plan.TotalInterestCents)
	for _, m := range plan.Schedule {
		assert.Zero(t, m.InterestCents)
	}
}

func TestSimulate_NegativeRateAccruesNothing(t *testing.T) {
	debt := model.Debt{
		ID:                  "n",
		Name:                "Negative",
		BalanceCents:        60000,
		InterestRate:        -1.5,
		MinimumPaymentCents: 1000,
		MonthlyPaymentCents: 10000,
	}

	plan, err := Simulate([]model.Debt{debt}, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.True(t, plan.PaidOff)
	assert.Equal(t, 6, plan.Months)
	assert.Zero(t, plan.TotalInterestCents)
}

func TestSimulate_NoDebts(t *testing.T) {
	plan, err := Simulate(nil, 5000, model.StrategyAvalanche, simStart)
	require.NoError(t, err)

	assert.True(t, plan.PaidOff)
	assert.Zero(t, plan.Months)
	assert.Zero(t, plan.TotalInterestCents)
	assert.Empty(t, plan.Schedule)
}

func TestSimulate_InvalidStrategy(t *testing.T) {
	_, err := Simulate([]model.Debt{creditCard()}, 0, model.Strategy("blizzard"), simStart)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidStrategy))
}

func TestSimulate_DoesNotMutateInput(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "Card A", BalanceCents: 500000, InterestRate: 24.99, MinimumPaymentCents: 10000, MonthlyPaymentCents: 15000},
		{ID: "b", Name: "Card B", BalanceCents: 100000, InterestRate: 12.5, MinimumPaymentCents: 2500, MonthlyPaymentCents: 5000},
	}
	original := append([]model.Debt(nil), debts...)

	_, err := Simulate(debts, 10000, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.Equal(t, original, debts)
}

func TestProject_ExtraPaymentMonotonicity(t *testing.T) {
	debt := creditCard()

	prev := Project(debt, 0)
	require.True(t, prev.PaidOff)

	for _, extra := range []int64{2500, 5000, 10000, 25000} {
		proj := Project(debt, extra)
		require.True(t, proj.PaidOff)
		assert.LessOrEqual(t, proj.Months, prev.Months, "extra=%d", extra)
		assert.LessOrEqual(t, proj.TotalInterestCents, prev.TotalInterestCents, "extra=%d", extra)
		prev = proj
	}
}

func TestProject_NeverPaysOff(t *testing.T) {
	debt := model.Debt{
		ID:           "h",
		Name:         "Hopeless",
		BalanceCents: 100000,
		InterestRate: 36,
	}

	proj := Project(debt, 0)
	assert.False(t, proj.PaidOff)
	assert.Equal(t, maxMonths, proj.Months)
}

func TestProject_MatchesSingleDebtSimulation(t *testing.T) {
	debt := creditCard()

	proj := Project(debt, 0)
	plan, err := Simulate([]model.Debt{debt}, 0, model.StrategySnowball, simStart)
	require.NoError(t, err)

	assert.Equal(t, plan.Months, proj.Months)
	assert.Equal(t, plan.TotalInterestCents, proj.TotalInterestCents)
}

func TestCompare(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "Card A", BalanceCents: 500000, InterestRate: 24.99, MinimumPaymentCents: 10000, MonthlyPaymentCents: 15000},
		{ID: "b", Name: "Card B", BalanceCents: 100000, InterestRate: 12.5, MinimumPaymentCents: 2500, MonthlyPaymentCents: 5000},
	}

	cmp, err := Compare(debts, 5000, simStart)
	require.NoError(t, err)

	require.NotNil(t, cmp.Snowball)
	require.NotNil(t, cmp.Avalanche)
	assert.Equal(t, model.StrategySnowball, cmp.Snowball.Strategy)
	assert.Equal(t, model.StrategyAvalanche, cmp.Avalanche.Strategy)
	assert.Equal(t, cmp.Snowball.TotalInterestCents-cmp.Avalanche.TotalInterestCents, cmp.InterestSavedCents)
	assert.Equal(t, cmp.Snowball.Months-cmp.Avalanche.Months, cmp.MonthsSaved)
	assert.GreaterOrEqual(t, cmp.InterestSavedCents, int64(0))
}
