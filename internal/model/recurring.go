package model

import "time"

// Frequency describes how often a recurring pattern repeats.
type Frequency string

// Frequency constants, ordered from shortest to longest period.
const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencySemiMonthly Frequency = "semi-monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnual      Frequency = "annual"
)

// MonthlyMultiplier converts a per-occurrence amount at this frequency to a
// monthly-equivalent rate.
func (f Frequency) MonthlyMultiplier() float64 {
	switch f {
	case FrequencyWeekly:
		return 52.0 / 12.0
	case FrequencyBiweekly:
		return 26.0 / 12.0
	case FrequencySemiMonthly:
		return 2
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 1.0 / 3.0
	case FrequencyAnnual:
		return 1.0 / 12.0
	default:
		return 1
	}
}

// RecurringPattern represents a detected recurring expense or income stream.
type RecurringPattern struct {
	LastOccurrence  time.Time
	Description     string // Representative label, from the newest transaction in the cluster
	Category        string
	Frequency       Frequency
	AverageAmount   float64 // Mean absolute amount per occurrence, major units
	OccurrenceCount int
}

// MonthlyEquivalent returns the pattern's amount normalized to a monthly rate.
func (p *RecurringPattern) MonthlyEquivalent() float64 {
	return p.AverageAmount * p.Frequency.MonthlyMultiplier()
}
