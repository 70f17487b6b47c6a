package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument marks inputs outside the supported domain of the
// calculation functions. Callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	one      = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

func validateTermRate(term int, rate decimal.Decimal) error {
	if term <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d", ErrInvalidArgument, term)
	}
	if rate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: rate must be greater than -1, got %s", ErrInvalidArgument, rate)
	}
	return nil
}
