package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is the zero amount.
var Zero = decimal.Zero

var oneHundred = decimal.NewFromInt(100)

// Parse converts a decimal string into an amount.
func Parse(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("money: empty amount")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: parse %q: %w", value, err)
	}
	return d, nil
}

// MustParse parses or panics. Intended for seed data and tests.
func MustParse(value string) decimal.Decimal {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// Percent returns base multiplied by percent/100 without rounding. Callers
// format the result at presentation time only.
func Percent(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(oneHundred)
}

// Format renders an amount as a fixed two-decimal string for display.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatUSD renders an amount with a leading dollar sign.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + Format(amount)
}
