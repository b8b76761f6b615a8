package model

import (
	"fmt"
	"time"
)

// Strategy selects the debt prioritization order for payoff simulation.
type Strategy string

const (
	// StrategySnowball pays smallest balances first.
	StrategySnowball Strategy = "snowball"
	// StrategyAvalanche pays highest interest rates first.
	StrategyAvalanche Strategy = "avalanche"
)

// ParseStrategy converts a string to a Strategy, failing fast on unknown
// values. A silently defaulted strategy would produce misleading projections.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySnowball:
		return StrategySnowball, nil
	case StrategyAvalanche:
		return StrategyAvalanche, nil
	default:
		return "", fmt.Errorf("unknown payoff strategy %q", s)
	}
}

// Debt represents a single debt account. Monetary fields are integer cents.
type Debt struct {
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ID                  string
	Name                string
	InterestRate        float64 // Annual percentage rate, e.g. 19.99
	BalanceCents        int64
	MinimumPaymentCents int64
	MonthlyPaymentCents int64 // Chosen current payment, may exceed the minimum
}

// DebtPayment records a single debt's share of one simulated month.
type DebtPayment struct {
	DebtID              string
	DebtName            string
	PrincipalCents      int64
	InterestCents       int64
	TotalPaidCents      int64
	RemainingAfterCents int64
}

// ScheduleMonth is one month of a simulated payoff schedule.
type ScheduleMonth struct {
	Date                  time.Time
	Payments              []DebtPayment
	MonthIndex            int // 1-based
	RemainingBalanceCents int64
	InterestCents         int64
}

// PayoffPlan is the full output of a payoff simulation.
type PayoffPlan struct {
	Strategy           Strategy
	Debts              []Debt // Working copies in strategy order
	Schedule           []ScheduleMonth
	TotalInterestCents int64
	Months             int
	PaidOff            bool // False when the 600-month safety cap was hit
}

// StrategyComparison holds the results of running both strategies on the
// same inputs.
type StrategyComparison struct {
	Snowball           *PayoffPlan
	Avalanche          *PayoffPlan
	InterestSavedCents int64 // Snowball interest minus avalanche interest
	MonthsSaved        int
}

// Projection is the result of a single-debt what-if projection.
type Projection struct {
	Months             int
	TotalInterestCents int64
	PaidOff            bool
}
