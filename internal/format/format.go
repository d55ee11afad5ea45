// Package format renders prices and counts for display.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money formats v as dollars with two decimals and grouped thousands,
// rounding half away from zero: 1234.5 -> "$1,234.50".
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("$%s%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// Count formats an integer with grouped thousands.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Threshold shows a break threshold as entered, with grouped thousands
// and no rounding: 12.5 -> "12.5", 1200 -> "1,200".
func Threshold(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return humanize.Commaf(v)
}

func Units(n int) string {
	if n == 1 {
		return "unit"
	}
	return "units"
}
