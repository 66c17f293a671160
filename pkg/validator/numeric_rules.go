package validator

import "fmt"

// RequiredNum validates that a numeric value is not zero.
func RequiredNum[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrFieldRequired.Error(),
		},
	}
}

// InRange validates min <= value < max. The upper bound is exclusive.
// message is formatted with the value as its only argument.
func InRange[T Numeric](field string, value T, min, max T, message string) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value < max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf(message, value),
		},
	}
}
