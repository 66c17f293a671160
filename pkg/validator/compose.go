package validator

// Validator checks a value and hands it back unchanged on success.
// A failing Validator returns the zero T and a non-nil error, usually ValidationErrors.
type Validator[T any] func(T) (T, error)

// FromRule adapts a rule builder into a Validator.
func FromRule[T any](build func(T) Rule) Validator[T] {
	return func(v T) (T, error) {
		if err := ApplyFirst(build(v)); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// FromRules adapts a multi-rule builder into a Validator that reports every
// failing rule of the set.
func FromRules[T any](build func(T) []Rule) Validator[T] {
	return func(v T) (T, error) {
		if err := Apply(build(v)...); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// Chain composes validators into a fail-fast pipeline.
// Each validator runs only if every previous one succeeded; the first error
// is returned as is. On success the original input is returned.
func Chain[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) (T, error) {
		for _, validate := range validators {
			if _, err := validate(v); err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
}

// Accumulate composes validators so that all of them run against the same
// input. Failures are concatenated in validator order into a single
// ValidationErrors; errors of other types become one entry carrying their text.
func Accumulate[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) (T, error) {
		var errs ValidationErrors
		for _, validate := range validators {
			if _, err := validate(v); err != nil {
				errs = errs.Append(asValidationErrors(err))
			}
		}
		if errs.IsEmpty() {
			return v, nil
		}
		var zero T
		return zero, errs
	}
}
