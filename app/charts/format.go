// Package charts holds the pure formatting helpers behind the seller
// dashboard: magnitude-banded number formatting, period generation and
// a mock series generator for demo data.
package charts

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrency renders a rand amount for chart axes. Values from a
// thousand up are shown in thousands with one decimal and a comma as
// decimal separator ("R 1,2K"), millions as a whole number ("R 1M").
// The comma is deliberate: it matches the South African convention the
// dashboards ship with.
func FormatCurrency(value float64) string {
	if value >= 1_000_000 {
		return fmt.Sprintf("R %dM", int64(math.Round(value/1_000_000)))
	}
	if value >= 1000 {
		return "R " + decimalComma(value/1000) + "K"
	}
	return fmt.Sprintf("R %d", int64(math.Round(value)))
}

// FormatValue renders a plain count with K/M suffixes, period decimal
// separator, one decimal in both bands. Sub-thousand values pass
// through unchanged.
func FormatValue(value float64) string {
	if value >= 1_000_000 {
		return toFixed1(value/1_000_000) + "M"
	}
	if value >= 1000 {
		return toFixed1(value/1000) + "K"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatPercentage always keeps one decimal, so whole numbers render
// as "100.0%" rather than "100%".
func FormatPercentage(value float64) string {
	return toFixed1(value) + "%"
}

// toFixed1 rounds half away from zero at one decimal, the way the
// dashboards have always displayed these numbers.
func toFixed1(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

func decimalComma(v float64) string {
	s := toFixed1(v)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i] + "," + s[i+1:]
		}
	}
	return s
}
