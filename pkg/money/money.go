package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a rupee amount with exact decimal precision.
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a float64.
// The value must be finite; use FromFloat when the input is untrusted.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromFloat creates a Money instance from a float64, rejecting NaN and infinities.
func FromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("amount must be finite, got %v", value)
	}
	return Money{decimal.NewFromFloat(value)}, nil
}

// FromDecimal creates a Money instance from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a Money instance from a string.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundPaisa rounds the amount to the nearest paisa (0.01).
func (m Money) RoundPaisa() Money {
	return Money{m.Decimal.Round(2)}
}

// CeilPaisa rounds the amount up to the next paisa. Amounts already at
// paisa granularity are unchanged.
func (m Money) CeilPaisa() Money {
	return Money{m.Decimal.RoundCeil(2)}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan checks if this amount is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Display returns the amount grouped Indian-style with a rupee prefix.
func (m Money) Display() string {
	return "₹" + FormatIndian(m.Decimal)
}

// FormatIndian formats an amount using South Asian digit grouping: the last
// three integer digits form one group, subsequent groups hold two digits
// (lakh/crore grouping), with exactly two decimal places.
// 123456789.4 becomes "12,34,56,789.40".
func FormatIndian(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	// Rightmost group of three, then groups of two.
	groups := []string{intPart[len(intPart)-3:]}
	rest := intPart[:len(intPart)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	b.WriteString(sign)
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}
