package service

// BandRule is one threshold/payload row for band resolution. Thresholds
// are lower bounds: a rule applies to any subject value >= Threshold.
type BandRule[T any] struct {
	Threshold int
	Payload   T
}

// ResolveBand picks the rule with the largest threshold not exceeding
// subject and returns its payload. The bool reports whether any rule
// qualified; when none does the zero payload is returned and callers apply
// their own default (default tier, zero shipping, retail price).
//
// Affiliate tiers, shipping rules and parlour pricing tiers all resolve
// through this one function.
func ResolveBand[T any](rules []BandRule[T], subject int) (T, bool) {
	var (
		best      T
		bestBound int
		matched   bool
	)
	for _, rule := range rules {
		if rule.Threshold > subject {
			continue
		}
		if !matched || rule.Threshold >= bestBound {
			best = rule.Payload
			bestBound = rule.Threshold
			matched = true
		}
	}
	return best, matched
}
