package validator

// RequiredString validates that a string is not empty.
// Whitespace counts as content; trim beforehand when that is not wanted.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrFieldRequired.Error(),
		},
	}
}

// Group folds several rules into one. It passes only when every inner rule
// passes and reports the single given error otherwise, hiding which inner
// rule failed.
func Group(field, message string, rules ...Rule) Rule {
	return Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
