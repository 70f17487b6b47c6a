package finance

import (
	"github.com/shopspring/decimal"
)

// FutureValue returns the balance after term years of annual compounding at
// rate, with a fixed payment applied each year. endOfPeriod selects ordinary
// annuity timing (payments at year end); false moves payments to year start,
// earning one extra year of growth each. The result is rounded to the
// nearest paisa.
//
// At rate zero the annuity factor is undefined, so accumulation degenerates
// to principal + payment*term.
func FutureValue(principal, payment decimal.Decimal, term int, rate decimal.Decimal, endOfPeriod bool) (decimal.Decimal, error) {
	if err := validateTermRate(term, rate); err != nil {
		return decimal.Decimal{}, err
	}

	if rate.IsZero() {
		total := principal.Add(payment.Mul(decimal.NewFromInt(int64(term))))
		return total.Round(2), nil
	}

	growth := growthFactor(term, rate)
	annuity := growth.Sub(one).Div(rate)
	if !endOfPeriod {
		annuity = annuity.Mul(one.Add(rate))
	}

	total := principal.Mul(growth).Add(payment.Mul(annuity))
	return total.Round(2), nil
}

// RequiredPayment solves the annuity formula for the yearly payment that
// grows presentValue into futureValue over term years at rate. The payment
// is rounded up to the next paisa so the target is always met, never
// undershot by a rounding step.
func RequiredPayment(presentValue, futureValue decimal.Decimal, term int, rate decimal.Decimal, endOfPeriod bool) (decimal.Decimal, error) {
	if err := validateTermRate(term, rate); err != nil {
		return decimal.Decimal{}, err
	}

	if rate.IsZero() {
		payment := futureValue.Sub(presentValue).Div(decimal.NewFromInt(int64(term)))
		return payment.RoundCeil(2), nil
	}

	growth := growthFactor(term, rate)
	annuity := growth.Sub(one).Div(rate)

	payment := futureValue.Sub(presentValue.Mul(growth)).Div(annuity)
	if !endOfPeriod {
		payment = payment.Div(one.Add(rate))
	}
	return payment.RoundCeil(2), nil
}
