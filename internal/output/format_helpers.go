package output

import (
	"github.com/e9akhan/finutil/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with Indian lakh/crore grouping and two decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal) string { return money.FormatIndian(amount) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
