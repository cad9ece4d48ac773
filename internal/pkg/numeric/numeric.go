// Package numeric centralizes the parsing of amounts arriving from
// review sheets and legacy imports, where "40,000", "-" and "" all mean
// a number. Every malformed value degrades to zero instead of failing
// the batch it belongs to.
package numeric

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a currency/number string. Thousands-separator
// commas are stripped; "", "-" and other placeholder values parse to 0.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		slog.Warn("malformed amount, defaulting to 0", "value", raw)
		return decimal.Zero
	}
	return d
}

// ParseDays parses a day count the same way and returns it as float64
// (day counts keep half-day granularity).
func ParseDays(raw string) float64 {
	f, _ := ParseAmount(raw).Float64()
	return f
}

// RoundMoney rounds to a whole currency unit, half away from zero.
// Paysheet amounts carry no fractional currency.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// ClampDays clamps a day count at zero. Negative counts can only come
// from malformed input and must never feed the LOP math.
func ClampDays(d float64) float64 {
	if d < 0 {
		return 0
	}
	return d
}
