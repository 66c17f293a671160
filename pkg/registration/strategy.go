package registration

import (
	"fmt"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// Strategy selects how the field validators are combined.
type Strategy string

const (
	// StrategyFailFast stops at the first failing validator and reports only it.
	StrategyFailFast Strategy = "fail_fast"
	// StrategyAccumulate runs every validator and reports all failures.
	StrategyAccumulate Strategy = "accumulate"
)

var (
	failFast   = validator.Chain(Validators()...)
	accumulate = validator.Accumulate(Validators()...)
)

// ValidateFailFast runs completeness, age and gender checks in order and
// returns the first failure. On success r is returned unchanged.
func ValidateFailFast(r Request) (Request, error) { return failFast(r) }

// ValidateAll runs every check against r and returns all failures as one
// validator.ValidationErrors in completeness, age, gender order.
func ValidateAll(r Request) (Request, error) { return accumulate(r) }

// ParseStrategy accepts "fail_fast" and "accumulate".
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFailFast, StrategyAccumulate:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Validate runs r through the validators combined according to s.
func (s Strategy) Validate(r Request) (Request, error) {
	switch s {
	case StrategyFailFast:
		return ValidateFailFast(r)
	case StrategyAccumulate:
		return ValidateAll(r)
	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}
