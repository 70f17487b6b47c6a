package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleMatchesFutureValue(t *testing.T) {
	principal := decimal.NewFromInt(50000)
	payment := decimal.NewFromInt(12000)
	rate := decimal.NewFromFloat(0.085)
	term := 25
	tolerance := decimal.NewFromFloat(0.01)

	for _, endOfPeriod := range []bool{true, false} {
		rows, err := Schedule(principal, payment, term, rate, endOfPeriod)
		require.NoError(t, err)
		require.Len(t, rows, term)

		fv, err := FutureValue(principal, payment, term, rate, endOfPeriod)
		require.NoError(t, err)

		final := rows[term-1].Closing
		assert.True(t, final.Sub(fv).Abs().LessThanOrEqual(tolerance),
			"end=%v: schedule closes at %s, future value %s", endOfPeriod, final, fv)
	}
}

func TestScheduleRows(t *testing.T) {
	rows, err := Schedule(decimal.NewFromInt(1000), decimal.NewFromInt(100), 2, decimal.NewFromFloat(0.10), true)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Year 1: 1000 opening, 100 interest, 100 payment at end.
	assert.Equal(t, 1, rows[0].Year)
	assert.Equal(t, "1000.00", rows[0].Opening.StringFixed(2))
	assert.Equal(t, "100.00", rows[0].Interest.StringFixed(2))
	assert.Equal(t, "1200.00", rows[0].Closing.StringFixed(2))

	// Year 2 opens at year 1 close.
	assert.Equal(t, "1200.00", rows[1].Opening.StringFixed(2))
	assert.Equal(t, "120.00", rows[1].Interest.StringFixed(2))
	assert.Equal(t, "1420.00", rows[1].Closing.StringFixed(2))
}

func TestScheduleDueTiming(t *testing.T) {
	// Payment at period start earns interest in the same year.
	rows, err := Schedule(decimal.Zero, decimal.NewFromInt(1000), 1, decimal.NewFromFloat(0.10), false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100.00", rows[0].Interest.StringFixed(2))
	assert.Equal(t, "1100.00", rows[0].Closing.StringFixed(2))

	// Payment at period end earns nothing in year one.
	rows, err = Schedule(decimal.Zero, decimal.NewFromInt(1000), 1, decimal.NewFromFloat(0.10), true)
	require.NoError(t, err)
	assert.Equal(t, "0.00", rows[0].Interest.StringFixed(2))
	assert.Equal(t, "1000.00", rows[0].Closing.StringFixed(2))
}

func TestScheduleInvalidArguments(t *testing.T) {
	_, err := Schedule(decimal.Zero, decimal.Zero, 0, decimal.NewFromFloat(0.05), true)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
