package config

import (
	"fmt"
	"os"

	"github.com/e9akhan/finutil/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a savings plan from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(plan.Scenarios))
	for i := range plan.Scenarios {
		sc := &plan.Scenarios[i]
		if err := ip.validateScenario(sc); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario.
func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if sc.TermYears <= 0 || sc.TermYears > 100 {
		return fmt.Errorf("term years must be between 1 and 100")
	}
	if sc.Rate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("rate must be greater than -100%%")
	}
	if sc.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if sc.Payment.LessThan(decimal.Zero) {
		return fmt.Errorf("payment cannot be negative")
	}
	if sc.TargetAmount != nil {
		if sc.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("target amount must be positive")
		}
		if sc.TargetAmount.LessThanOrEqual(sc.Principal) {
			return fmt.Errorf("target amount must be greater than the principal")
		}
	}
	return nil
}

// CreateExamplePlan returns a ready-made plan demonstrating each scenario kind.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	target := decimal.NewFromInt(100000000)
	startOfPeriod := false
	return &domain.Plan{
		Scenarios: []domain.Scenario{
			{
				Name:      "Fixed deposit",
				Principal: decimal.NewFromInt(123456),
				TermYears: 23,
				Rate:      decimal.NewFromFloat(0.08),
			},
			{
				Name:      "Recurring deposit",
				Principal: decimal.Zero,
				Payment:   decimal.NewFromInt(100000),
				TermYears: 35,
				Rate:      decimal.NewFromFloat(0.10),
			},
			{
				Name:         "Retirement goal of 10 crore",
				Principal:    decimal.Zero,
				Payment:      decimal.NewFromInt(100000),
				TermYears:    35,
				Rate:         decimal.NewFromFloat(0.10),
				EndOfPeriod:  &startOfPeriod,
				TargetAmount: &target,
			},
		},
	}
}

// ExamplePlanYAML is the example plan in file form, written by the
// example-config command.
const ExamplePlanYAML = `scenarios:
  - name: "Fixed deposit"
    principal: 123456
    term_years: 23
    rate: 0.08

  - name: "Recurring deposit"
    principal: 0
    payment: 100000
    term_years: 35
    rate: 0.10

  - name: "Retirement goal of 10 crore"
    principal: 0
    payment: 100000
    term_years: 35
    rate: 0.10
    end_of_period: false
    target_amount: 100000000
`
