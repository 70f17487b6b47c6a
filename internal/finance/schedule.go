package finance

import (
	"github.com/e9akhan/finutil/internal/domain"
	"github.com/shopspring/decimal"
)

// Schedule produces the year-by-year accumulation behind FutureValue: one row
// per year with opening balance, interest earned, payment applied and closing
// balance. Row amounts are rounded to the paisa for display; the running
// balance keeps full precision, so the final closing balance agrees with
// FutureValue to within a paisa.
func Schedule(principal, payment decimal.Decimal, term int, rate decimal.Decimal, endOfPeriod bool) ([]domain.ScheduleRow, error) {
	if err := validateTermRate(term, rate); err != nil {
		return nil, err
	}

	rows := make([]domain.ScheduleRow, 0, term)
	balance := principal
	for year := 1; year <= term; year++ {
		opening := balance
		if !endOfPeriod {
			balance = balance.Add(payment)
		}
		interest := balance.Mul(rate)
		balance = balance.Add(interest)
		if endOfPeriod {
			balance = balance.Add(payment)
		}
		rows = append(rows, domain.ScheduleRow{
			Year:     year,
			Opening:  opening.Round(2),
			Interest: interest.Round(2),
			Payment:  payment.Round(2),
			Closing:  balance.Round(2),
		})
	}
	return rows, nil
}
