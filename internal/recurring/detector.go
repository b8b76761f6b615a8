package recurring

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

const (
	// amountBucketCents rounds absolute amounts to the nearest 5 cents to
	// form provisional clusters.
	amountBucketCents = 5

	// maxAmountCV is the acceptance limit on amount consistency within a
	// cluster, computed on true amounts rather than the bucketed value.
	maxAmountCV = 0.10

	// minTokenShare is the fraction of cluster members that must carry the
	// cluster's dominant vendor token.
	minTokenShare = 0.5

	// Default and high-confidence minimum occurrence thresholds. Checks and
	// known subscription vendors are reliable signals even with sparse
	// history.
	defaultMinOccurrences        = 3
	highConfidenceMinOccurrences = 2

	// staleAfterMonths drops expense patterns not seen recently; they are
	// treated as discontinued.
	staleAfterMonths = 6
)

// Detector finds recurring expense and income patterns in transaction
// history. All methods are pure: they never mutate their input and return
// identical results for identical inputs.
type Detector struct {
	now time.Time
}

// NewDetector creates a detector that evaluates staleness against the given
// reference time.
func NewDetector(now time.Time) *Detector {
	return &Detector{now: now}
}

// Expenses returns the recurring expense patterns suitable for monthly
// budgeting: weekly, biweekly, or monthly cadence, seen within the last six
// months. Quarterly and annual patterns stay available via ExpensePatterns.
func (d *Detector) Expenses(txns []model.Transaction) []model.RecurringPattern {
	cutoff := d.now.AddDate(0, -staleAfterMonths, 0)

	var out []model.RecurringPattern
	for _, p := range d.ExpensePatterns(txns) {
		switch p.Frequency {
		case model.FrequencyWeekly, model.FrequencyBiweekly, model.FrequencyMonthly:
		default:
			continue
		}
		if p.LastOccurrence.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ExpensePatterns clusters outflows into recurring patterns without the
// budgeting frequency/staleness filter.
func (d *Detector) ExpensePatterns(txns []model.Transaction) []model.RecurringPattern {
	// Provisional buckets: rounded absolute amount first, then the vendor
	// token within each bucket. Same-amount purchases from unrelated
	// vendors land in the same bucket but separate clusters.
	clusters := make(map[string][]model.Transaction)
	for _, t := range txns {
		if !t.Valid() || t.AmountCents >= 0 {
			continue
		}
		vendor := MerchantKey(t.Description)
		if vendor == "" {
			continue
		}
		key := fmt.Sprintf("%s|%d", vendor, roundToBucket(-t.AmountCents))
		clusters[key] = append(clusters[key], t)
	}

	var out []model.RecurringPattern
	for _, members := range clusters {
		if p, ok := d.acceptExpenseCluster(members); ok {
			out = append(out, p)
		}
	}

	sortPatterns(out)
	return out
}

// acceptExpenseCluster applies the acceptance tests to a provisional
// cluster and builds its pattern when it passes.
func (d *Detector) acceptExpenseCluster(members []model.Transaction) (model.RecurringPattern, bool) {
	descriptions := make([]string, len(members))
	for i, t := range members {
		descriptions[i] = t.Description
	}

	// The bucket is only a candidate grouping; membership must agree on a
	// vendor token across at least half the members.
	_, share := commonTokenShare(descriptions)
	if share < minTokenShare {
		return model.RecurringPattern{}, false
	}

	normalized := Normalize(members[0].Description)
	minOccurrences := defaultMinOccurrences
	if IsCheck(members[0].Description) || IsKnownSubscription(normalized) {
		minOccurrences = highConfidenceMinOccurrences
	}
	if len(members) < minOccurrences {
		return model.RecurringPattern{}, false
	}

	// Acceptance is on real amount consistency, not the bucketed value.
	amounts := make([]float64, len(members))
	for i, t := range members {
		amounts[i] = math.Abs(t.Amount())
	}
	if coefficientOfVariation(amounts) > maxAmountCV {
		return model.RecurringPattern{}, false
	}

	return d.buildPattern(members), true
}

// Income returns recurring income streams: deposits with pay-like
// descriptions or an explicit Salary category, grouped by exact normalized
// description. Paychecks from one employer recur at a near-constant amount
// and a consistent description, so no amount bucketing is needed.
func (d *Detector) Income(txns []model.Transaction) []model.RecurringPattern {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		if !t.Valid() || t.AmountCents <= 0 {
			continue
		}
		if !LooksLikeIncome(t.Description, t.Category) {
			continue
		}
		key := Normalize(t.Description)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], t)
	}

	var out []model.RecurringPattern
	for _, members := range groups {
		if len(members) < highConfidenceMinOccurrences {
			continue
		}
		out = append(out, d.buildPattern(members))
	}

	sortPatterns(out)
	return out
}

// buildPattern assembles the pattern summary for an accepted cluster.
func (d *Detector) buildPattern(members []model.Transaction) model.RecurringPattern {
	sort.Slice(members, func(i, j int) bool {
		return members[i].Date.Before(members[j].Date)
	})

	dates := make([]time.Time, len(members))
	var totalAbs float64
	for i, t := range members {
		dates[i] = t.Date
		totalAbs += math.Abs(t.Amount())
	}

	newest := members[len(members)-1]

	return model.RecurringPattern{
		Description:     newest.Description,
		Category:        newest.Category,
		OccurrenceCount: len(members),
		AverageAmount:   totalAbs / float64(len(members)),
		LastOccurrence:  newest.Date,
		Frequency:       inferFrequency(dates, IsCheck(newest.Description)),
	}
}

// roundToBucket rounds positive cents to the nearest bucket boundary.
func roundToBucket(cents int64) int64 {
	return (cents + amountBucketCents/2) / amountBucketCents * amountBucketCents
}

// sortPatterns orders output deterministically: largest monthly impact
// first, description as tie-break. Map iteration order must not leak into
// results.
func sortPatterns(patterns []model.RecurringPattern) {
	sort.Slice(patterns, func(i, j int) bool {
		mi, mj := patterns[i].MonthlyEquivalent(), patterns[j].MonthlyEquivalent()
		if mi != mj {
			return mi > mj
		}
		return patterns[i].Description < patterns[j].Description
	})
}
