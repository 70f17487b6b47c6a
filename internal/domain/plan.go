package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is the top-level input document: a list of savings scenarios to evaluate.
type Plan struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario describes one savings situation: a starting principal growing at an
// annual rate, with an optional periodic payment and an optional target amount
// to solve the required payment for.
type Scenario struct {
	Name      string          `yaml:"name" json:"name"`
	Principal decimal.Decimal `yaml:"principal" json:"principal"`
	Payment   decimal.Decimal `yaml:"payment" json:"payment"`
	TermYears int             `yaml:"term_years" json:"term_years"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	// EndOfPeriod selects ordinary-annuity timing (payments at period end).
	// Unset means true.
	EndOfPeriod *bool `yaml:"end_of_period,omitempty" json:"end_of_period,omitempty"`
	// TargetAmount, when set, additionally solves for the yearly payment
	// needed to reach it from Principal over the term.
	TargetAmount *decimal.Decimal `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
}

// PaysAtPeriodEnd reports the payment timing, defaulting to end of period.
func (s *Scenario) PaysAtPeriodEnd() bool {
	return s.EndOfPeriod == nil || *s.EndOfPeriod
}

// ScheduleRow is a single year of a growth schedule.
type ScheduleRow struct {
	Year     int             `yaml:"year" json:"year"`
	Opening  decimal.Decimal `yaml:"opening" json:"opening"`
	Interest decimal.Decimal `yaml:"interest" json:"interest"`
	Payment  decimal.Decimal `yaml:"payment" json:"payment"`
	Closing  decimal.Decimal `yaml:"closing" json:"closing"`
}

// ScenarioResult holds every amount computed for a scenario.
type ScenarioResult struct {
	Name string `yaml:"name" json:"name"`
	// SimpleAmount is the balance after simple interest over the term.
	SimpleAmount decimal.Decimal `yaml:"simple_amount" json:"simple_amount"`
	// CompoundAmount is the balance after annual compounding, no payments.
	CompoundAmount decimal.Decimal `yaml:"compound_amount" json:"compound_amount"`
	// FutureValue is the balance after compounding with periodic payments.
	FutureValue decimal.Decimal `yaml:"future_value" json:"future_value"`
	// RequiredPayment is set when the scenario names a target amount.
	RequiredPayment *decimal.Decimal `yaml:"required_payment,omitempty" json:"required_payment,omitempty"`
	Schedule        []ScheduleRow    `yaml:"schedule" json:"schedule"`
}

// PlanReport is the output of evaluating a plan.
type PlanReport struct {
	GeneratedAt time.Time        `yaml:"generated_at" json:"generated_at"`
	Scenarios   []ScenarioResult `yaml:"scenarios" json:"scenarios"`
}
