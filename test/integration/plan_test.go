package integration

import (
	"testing"

	"github.com/e9akhan/finutil/internal/config"
	"github.com/e9akhan/finutil/internal/finance"
	"github.com/e9akhan/finutil/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)
	require.Len(t, plan.Scenarios, 3)

	engine := finance.NewEngine()
	report, err := engine.RunPlan(plan)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 3)

	deposit := report.Scenarios[0]
	assert.Equal(t, "350615.04", deposit.SimpleAmount.StringFixed(2))
	assert.Equal(t, "724867.42", deposit.CompoundAmount.StringFixed(2))

	recurring := report.Scenarios[1]
	assert.Equal(t, "27102436.85", recurring.FutureValue.StringFixed(2))

	goal := report.Scenarios[2]
	require.NotNil(t, goal.RequiredPayment)
	assert.Equal(t, "368970.52", goal.RequiredPayment.StringFixed(2))

	// The solved payment actually reaches the target.
	fv, err := finance.FutureValue(decimal.Zero, *goal.RequiredPayment, 35, decimal.NewFromFloat(0.10), true)
	require.NoError(t, err)
	assert.True(t, fv.GreaterThanOrEqual(decimal.NewFromInt(100000000)),
		"payment %s only reaches %s", goal.RequiredPayment, fv)
}

func TestReportGeneration(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)

	engine := finance.NewEngine()
	report, err := engine.RunPlan(plan)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "console-verbose", "csv", "csv-detailed", "json"} {
		path, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, "format %s", format)
		assert.FileExists(t, path)
	}

	_, err = output.GenerateReport(report, "html", dir)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}
