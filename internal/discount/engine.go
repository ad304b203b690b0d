package discount

import (
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/money"
)

// Applicable selects the rule to apply for the given total unit count, or nil
// when no rule qualifies. Among active rules whose minimum quantity is met the
// highest percentage wins; on an equal percentage the rule appearing earlier
// in the input sequence is kept, so identical inputs always resolve to the
// same rule.
func Applicable(rules []Rule, totalQuantity int) *Rule {
	var best *Rule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive || totalQuantity < r.MinQuantity {
			continue
		}
		if best == nil || r.DiscountPercent.GreaterThan(best.DiscountPercent) {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	selected := *best
	return &selected
}

// Amount computes the discount value for a subtotal under the given rule.
// A nil rule yields exactly zero.
func Amount(subtotal decimal.Decimal, rule *Rule) decimal.Decimal {
	if rule == nil {
		return decimal.Zero
	}
	return money.Percent(subtotal, rule.DiscountPercent)
}
