package finance

import (
	"fmt"
	"time"

	"github.com/e9akhan/finutil/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine evaluates savings plans.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new plan engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan evaluates every scenario in the plan and collects the results
// into a report.
func (e *Engine) RunPlan(plan *domain.Plan) (*domain.PlanReport, error) {
	results := make([]domain.ScenarioResult, 0, len(plan.Scenarios))
	for i := range plan.Scenarios {
		sc := &plan.Scenarios[i]
		result, err := e.runScenario(sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		results = append(results, *result)
	}
	return &domain.PlanReport{
		GeneratedAt: time.Now(),
		Scenarios:   results,
	}, nil
}

func (e *Engine) runScenario(sc *domain.Scenario) (*domain.ScenarioResult, error) {
	endOfPeriod := sc.PaysAtPeriodEnd()

	simple, err := SimpleInterest(sc.Principal, sc.TermYears, sc.Rate)
	if err != nil {
		return nil, err
	}
	compound, err := CompoundInterest(sc.Principal, sc.TermYears, sc.Rate)
	if err != nil {
		return nil, err
	}
	futureValue, err := FutureValue(sc.Principal, sc.Payment, sc.TermYears, sc.Rate, endOfPeriod)
	if err != nil {
		return nil, err
	}
	schedule, err := Schedule(sc.Principal, sc.Payment, sc.TermYears, sc.Rate, endOfPeriod)
	if err != nil {
		return nil, err
	}

	var required *decimal.Decimal
	if sc.TargetAmount != nil {
		payment, err := RequiredPayment(sc.Principal, *sc.TargetAmount, sc.TermYears, sc.Rate, endOfPeriod)
		if err != nil {
			return nil, err
		}
		required = &payment
		e.Logger.Debugf("scenario %s: target %s needs yearly payment %s",
			sc.Name, sc.TargetAmount.StringFixed(2), payment.StringFixed(2))
	}

	e.Logger.Debugf("scenario %s: simple=%s compound=%s fv=%s",
		sc.Name, simple.StringFixed(2), compound.StringFixed(2), futureValue.StringFixed(2))

	return &domain.ScenarioResult{
		Name:            sc.Name,
		SimpleAmount:    simple.Round(2),
		CompoundAmount:  compound.Round(2),
		FutureValue:     futureValue,
		RequiredPayment: required,
		Schedule:        schedule,
	}, nil
}
