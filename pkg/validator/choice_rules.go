package validator

import (
	"fmt"
	"slices"
)

// InList validates that value is one of allowedValues.
// message is formatted with the value as its only argument; when empty a
// generic message listing the allowed values is used.
func InList[T comparable](field string, value T, allowedValues []T, message string) Rule {
	msg := fmt.Sprintf("must be one of: %v", allowedValues)
	if message != "" {
		msg = fmt.Sprintf(message, value)
	}
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: msg,
		},
	}
}
