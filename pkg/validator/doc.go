// Package validator provides small, generic building blocks for checking
// untrusted input and composing those checks.
//
// There are two layers. A Rule is a single boolean Check bundled with the
// ValidationError to report when it fails. A Validator[T] is a function that
// takes a value and either hands it back unchanged or returns an error,
// usually ValidationErrors.
//
// # Composition
//
// Both layers come with a fail-fast and an accumulating combinator:
//
//	Rules:       ApplyFirst (stop at first failure)   Apply (collect all)
//	Validators:  Chain      (stop at first failure)   Accumulate (collect all)
//
// Accumulation concatenates failures in evaluation order. Entries are never
// reordered or deduplicated, so two failing validators always yield two
// entries in the order they ran.
//
// # Usage
//
//	notEmpty := validator.FromRule(func(f Form) validator.Rule {
//	    return validator.RequiredString("name", f.Name)
//	})
//	adult := validator.FromRule(func(f Form) validator.Rule {
//	    return validator.InRange("age", f.Age, 18, 150, "Invalid age of %v")
//	})
//
//	if _, err := validator.Accumulate(notEmpty, adult)(form); err != nil {
//	    for _, msg := range validator.ExtractValidationErrors(err).Messages() {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Use ExtractValidationErrors or errors.As to get at the entries.
//
// All helpers are pure and hold no state, so they are safe for concurrent use.
package validator
