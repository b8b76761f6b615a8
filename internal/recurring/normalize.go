// Package recurring detects recurring expense and income patterns in
// transaction history.
package recurring

import (
	"regexp"
	"strings"
)

// boilerplateTokens are transfer/reference words that banks and payment
// processors embed in descriptions. They carry no vendor signal.
var boilerplateTokens = map[string]struct{}{
	"ach":        {},
	"xfer":       {},
	"transfer":   {},
	"debit":      {},
	"withdrawal": {},
	"payment":    {},
	"inst":       {},
	"paypal":     {},
}

// subscriptionKeywords mark vendors reliable enough to accept with only
// two occurrences.
var subscriptionKeywords = []string{
	"netflix",
	"spotify",
	"hulu",
	"subscription",
	"membership",
}

// incomeKeywords identify deposits that look like pay.
var incomeKeywords = []string{
	"salary",
	"paycheck",
	"payroll",
	"income",
}

var (
	checkRe    = regexp.MustCompile(`(?i)check\s*#|\bchk\b|\bck\b`)
	digitRunRe = regexp.MustCompile(`\d{4,}$`)
	splitRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Tokens normalizes a raw statement description into its significant vendor
// tokens: lowercased, processor boilerplate and reference numbers removed.
// "PAYPAL INST XFER SPOTIFY*REF123" yields ["spotify"].
func Tokens(desc string) []string {
	lower := strings.ToLower(strings.TrimSpace(desc))

	var out []string
	for _, raw := range strings.Fields(lower) {
		// Payment-processor pass-throughs append a reference after '*';
		// the true merchant is the part before it.
		if idx := strings.IndexByte(raw, '*'); idx >= 0 {
			raw = raw[:idx]
		}

		for _, tok := range splitRe.Split(raw, -1) {
			tok = digitRunRe.ReplaceAllString(tok, "")
			if tok == "" {
				continue
			}
			if _, skip := boilerplateTokens[tok]; skip {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// Normalize returns the canonical form of a description: its significant
// tokens joined by single spaces.
func Normalize(desc string) string {
	return strings.Join(Tokens(desc), " ")
}

// MerchantKey extracts the representative vendor token from a description,
// or "" when nothing survives normalization.
func MerchantKey(desc string) string {
	toks := Tokens(desc)
	if len(toks) == 0 {
		return ""
	}
	return toks[0]
}

// IsCheck reports whether the description looks like a written check.
func IsCheck(desc string) bool {
	return checkRe.MatchString(desc)
}

// IsKnownSubscription reports whether the normalized description names a
// known subscription vendor.
func IsKnownSubscription(normalized string) bool {
	for _, kw := range subscriptionKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// LooksLikeIncome reports whether a description or category marks a deposit
// as recurring income rather than a refund or transfer.
func LooksLikeIncome(desc, category string) bool {
	if strings.EqualFold(category, "salary") {
		return true
	}
	lower := strings.ToLower(desc)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// commonTokenShare finds the token shared by the most cluster members and
// returns it with the fraction of members containing it. Unrelated purchases
// that landed in the same amount bucket fail this check.
func commonTokenShare(descriptions []string) (string, float64) {
	if len(descriptions) == 0 {
		return "", 0
	}

	counts := make(map[string]int)
	for _, desc := range descriptions {
		seen := make(map[string]struct{})
		for _, tok := range Tokens(desc) {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			counts[tok]++
		}
	}

	best := ""
	bestCount := 0
	for tok, n := range counts {
		if n > bestCount || (n == bestCount && tok < best) {
			best = tok
			bestCount = n
		}
	}
	return best, float64(bestCount) / float64(len(descriptions))
}
