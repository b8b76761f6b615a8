package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "snowball", want: StrategySnowball},
		{input: "avalanche", want: StrategyAvalanche},
		{input: "Snowball", wantErr: true},
		{input: "blizzard", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransaction_Valid(t *testing.T) {
	valid := Transaction{
		Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: "Spotify Subscription",
		AmountCents: -790,
	}
	assert.True(t, valid.Valid())

	noDate := valid
	noDate.Date = time.Time{}
	assert.False(t, noDate.Valid())

	noAmount := valid
	noAmount.AmountCents = 0
	assert.False(t, noAmount.Valid())

	noDesc := valid
	noDesc.Description = ""
	assert.False(t, noDesc.Valid())
}

func TestTransaction_GenerateHash(t *testing.T) {
	a := Transaction{
		Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: "Spotify Subscription",
		AmountCents: -790,
	}

	// Identical fields hash identically regardless of ID.
	b := a
	b.ID = "different"
	assert.Equal(t, a.GenerateHash(), b.GenerateHash())

	c := a
	c.AmountCents = -791
	assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())

	d := a
	d.Date = a.Date.AddDate(0, 0, 1)
	assert.NotEqual(t, a.GenerateHash(), d.GenerateHash())
}

func TestRecurringPattern_MonthlyEquivalent(t *testing.T) {
	p := RecurringPattern{
		AverageAmount: 1624.74,
		Frequency:     FrequencyBiweekly,
	}
	assert.InDelta(t, 1624.74*26/12, p.MonthlyEquivalent(), 0.01)

	p.Frequency = FrequencyMonthly
	assert.InDelta(t, 1624.74, p.MonthlyEquivalent(), 0.01)

	p.Frequency = FrequencyAnnual
	assert.InDelta(t, 1624.74/12, p.MonthlyEquivalent(), 0.01)
}
