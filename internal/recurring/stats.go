package recurring

import (
	"math"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// dayGaps returns the day counts between consecutive dates. Dates must be
// sorted ascending; zero-day gaps (same-day duplicates) are kept out.
func dayGaps(dates []time.Time) []float64 {
	var gaps []float64
	for i := 1; i < len(dates); i++ {
		days := dates[i].Sub(dates[i-1]).Hours() / 24
		if days > 0 {
			gaps = append(gaps, days)
		}
	}
	return gaps
}

// meanStdDev computes the mean and population standard deviation.
func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}

	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / float64(len(values)))
}

// inferFrequency classifies the gap distribution of a sorted date series.
// Checks use a simplified three-way split since check cadence is coarser
// and check dates drift with deposit timing.
func inferFrequency(dates []time.Time, isCheck bool) model.Frequency {
	gaps := dayGaps(dates)
	if len(gaps) == 0 {
		return model.FrequencyMonthly
	}

	avgGap, stdDevGap := meanStdDev(gaps)

	if isCheck {
		switch {
		case avgGap <= 8:
			return model.FrequencyWeekly
		case avgGap >= 20 && avgGap <= 35:
			return model.FrequencyMonthly
		default:
			return model.FrequencyBiweekly
		}
	}

	switch {
	case avgGap < 10:
		return model.FrequencyWeekly
	case avgGap < 18:
		return disambiguatePayCycle(dates)
	case avgGap < 25:
		return model.FrequencyBiweekly
	case avgGap < 40:
		// Tight clustering around a calendar date means monthly; scattered
		// gaps in this band mean a biweekly cycle with missed occurrences.
		if stdDevGap < 5 {
			return model.FrequencyMonthly
		}
		return model.FrequencyBiweekly
	case avgGap < 100:
		return model.FrequencyQuarterly
	default:
		return model.FrequencyAnnual
	}
}

// disambiguatePayCycle separates biweekly (every 14 days, ~26/yr) from
// semi-monthly (fixed calendar days, ~24/yr) in the ambiguous 10-18 day
// band. Semi-monthly pays on two fixed days of the month; biweekly drifts
// across the calendar.
func disambiguatePayCycle(dates []time.Time) model.Frequency {
	daysOfMonth := make(map[int]struct{})
	perMonth := make(map[string]int)
	for _, d := range dates {
		daysOfMonth[d.Day()] = struct{}{}
		perMonth[d.Format("2006-01")]++
	}

	if len(daysOfMonth) == 2 {
		twice := 0
		for _, n := range perMonth {
			if n == 2 {
				twice++
			}
		}
		if float64(twice) >= 0.7*float64(len(perMonth)) {
			return model.FrequencySemiMonthly
		}
	}

	if annualizedRate(dates) > 25 {
		return model.FrequencyBiweekly
	}
	return model.FrequencySemiMonthly
}

// annualizedRate estimates occurrences per year from the covered span.
func annualizedRate(dates []time.Time) float64 {
	if len(dates) < 2 {
		return 0
	}
	spanDays := dates[len(dates)-1].Sub(dates[0]).Hours() / 24
	monthsSpanned := spanDays / 30.44
	if monthsSpanned < 1 {
		monthsSpanned = 1
	}
	return float64(len(dates)) / monthsSpanned * 12
}

// coefficientOfVariation measures amount consistency as stddev over mean.
func coefficientOfVariation(amounts []float64) float64 {
	mean, stdDev := meanStdDev(amounts)
	if mean == 0 {
		return 0
	}
	return stdDev / mean
}
