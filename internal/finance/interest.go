package finance

import (
	"github.com/shopspring/decimal"
)

// SimpleInterest returns the total amount after simple interest accrual
// over term years: principal * (1 + rate*term).
func SimpleInterest(principal decimal.Decimal, term int, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateTermRate(term, rate); err != nil {
		return decimal.Decimal{}, err
	}
	growth := one.Add(rate.Mul(decimal.NewFromInt(int64(term))))
	return principal.Mul(growth), nil
}

// CompoundInterest returns the total amount after annual compounding
// over term years: principal * (1+rate)^term.
func CompoundInterest(principal decimal.Decimal, term int, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := validateTermRate(term, rate); err != nil {
		return decimal.Decimal{}, err
	}
	return principal.Mul(growthFactor(term, rate)), nil
}

// growthFactor returns (1+rate)^term.
func growthFactor(term int, rate decimal.Decimal) decimal.Decimal {
	return one.Add(rate).Pow(decimal.NewFromInt(int64(term)))
}
