package finance

import (
	"testing"

	"github.com/e9akhan/finutil/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlan(t *testing.T) {
	target := decimal.NewFromFloat(1e8)
	plan := &domain.Plan{
		Scenarios: []domain.Scenario{
			{
				Name:      "fixed deposit",
				Principal: decimal.NewFromInt(123456),
				TermYears: 23,
				Rate:      decimal.NewFromFloat(0.08),
			},
			{
				Name:         "retirement goal",
				Principal:    decimal.Zero,
				Payment:      decimal.NewFromInt(100000),
				TermYears:    35,
				Rate:         decimal.NewFromFloat(0.10),
				TargetAmount: &target,
			},
		},
	}

	engine := NewEngine()
	report, err := engine.RunPlan(plan)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 2)
	assert.False(t, report.GeneratedAt.IsZero())

	deposit := report.Scenarios[0]
	assert.Equal(t, "fixed deposit", deposit.Name)
	assert.Equal(t, "350615.04", deposit.SimpleAmount.StringFixed(2))
	assert.Equal(t, "724867.42", deposit.CompoundAmount.StringFixed(2))
	assert.Equal(t, "724867.42", deposit.FutureValue.StringFixed(2))
	assert.Nil(t, deposit.RequiredPayment)
	assert.Len(t, deposit.Schedule, 23)

	goal := report.Scenarios[1]
	assert.Equal(t, "27102436.85", goal.FutureValue.StringFixed(2))
	require.NotNil(t, goal.RequiredPayment)
	assert.Equal(t, "368970.52", goal.RequiredPayment.StringFixed(2))
	assert.Len(t, goal.Schedule, 35)
}

func TestRunPlanInvalidScenario(t *testing.T) {
	plan := &domain.Plan{
		Scenarios: []domain.Scenario{
			{Name: "broken", Principal: decimal.NewFromInt(1000), TermYears: 0, Rate: decimal.NewFromFloat(0.05)},
		},
	}
	_, err := NewEngine().RunPlan(plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "broken")
}

type recordingLogger struct {
	NopLogger
	debugCalls int
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.debugCalls++ }

func TestSetLogger(t *testing.T) {
	engine := NewEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	plan := &domain.Plan{Scenarios: []domain.Scenario{
		{Name: "logged", Principal: decimal.NewFromInt(1000), TermYears: 1, Rate: decimal.NewFromFloat(0.05)},
	}}
	_, err := engine.RunPlan(plan)
	require.NoError(t, err)
	assert.Positive(t, logger.debugCalls)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
