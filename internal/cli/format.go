// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money formats decimal amounts for display. Stored amounts are never rounded;
// rounding happens only here.
type Money struct {
	Symbol string
	Places int32
}

// DefaultMoney matches the config defaults.
var DefaultMoney = Money{Symbol: "€", Places: 2}

// Format renders d as e.g. "€1,500.00" or "-€300.00".
func (m Money) Format(d decimal.Decimal) string {
	places := m.Places
	if places < 0 {
		places = 2
	}

	fixed := d.Abs().StringFixed(places)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(m.Symbol)
	b.WriteString(groupDigits(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

// groupDigits inserts commas every three digits of an unsigned digit string.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Ratio returns part/whole as a float, or 0 when whole is not positive.
func Ratio(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Float64()
	return f
}
