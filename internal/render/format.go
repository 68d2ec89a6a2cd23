// Package render turns a budget snapshot into the formatted proposal
// document and provides the formatting helpers used across the CLI and TUI.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats an amount with the given symbol, two decimals and
// comma thousand separators. e.g., 1234.5 -> "$1,234.50"
func FormatCurrency(symbol string, amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := symbol + groupThousands(intPart) + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatHours formats an hour count, trimming a trailing ".0".
// e.g., 10 -> "10", 7.5 -> "7.5"
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if s == "" {
		return "0"
	}
	return s
}

// FormatWeeks formats a week estimate to one decimal place.
func FormatWeeks(weeks float64) string {
	return fmt.Sprintf("%.1f", weeks)
}

// groupThousands adds comma separators to a digit string.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
