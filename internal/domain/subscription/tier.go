// Package subscription models the paid plans that gate search filters.
package subscription

import "fmt"

// Tier is a subscription plan level.
type Tier string

// Plans in ascending order.
const (
	Free     Tier = "FREE"
	Lite     Tier = "LITE"
	Premium  Tier = "PREMIUM"
	Ultimate Tier = "ULTIMATE"
)

var ranks = map[Tier]int{
	Free:     0,
	Lite:     1,
	Premium:  2,
	Ultimate: 3,
}

// Parse converts a string into a Tier. The empty string is Free.
func Parse(s string) (Tier, error) {
	if s == "" {
		return Free, nil
	}
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown subscription tier %q", s)
	}
	return t, nil
}

// IsValid reports whether t is a known plan.
func (t Tier) IsValid() bool {
	_, ok := ranks[t]
	return ok
}

// Rank orders plans; unknown tiers rank as Free.
func (t Tier) Rank() int { return ranks[t] }

// Allows reports whether a holder of t may use something that requires required.
func (t Tier) Allows(required Tier) bool {
	return t.Rank() >= required.Rank()
}

// IsPaid reports whether t requires a subscription.
func (t Tier) IsPaid() bool { return t.Rank() > 0 }
