// Package registration turns an untrusted signup Request into a typed User.
//
// The work is split into two independent stages.
//
// Field validation checks business rules on the raw Request: every field is
// present, MinAge <= age < MaxAge, and the sex code is one of "M", "F" or
// "X". The checks can be combined fail-fast (ValidateFailFast) or
// accumulating (ValidateAll):
//
//	_, err := registration.ValidateAll(req)
//	for _, msg := range validator.ExtractValidationErrors(err).Messages() {
//	    // "Invalid age of 13", "Invalid sex of G", ...
//	}
//
// Resolution builds each part of a User through its smart constructor and
// joins them all-or-nothing:
//
//	user, ok := registration.Resolve(req)
//	if !ok {
//	    // some component was absent, e.g. an unmapped country
//	}
//
// Resolution enforces only structural invariants (non-empty names, age of at
// least one, known gender and country). It does not repeat the field
// validation, so callers that need both run a Strategy first. Registrar does
// exactly that, with optional Normalize in front and structured logging.
//
// Region is a closed set: Europe, NorthAmerica and OtherRegion are its only
// implementations. MatchRegion forces callers to handle all three.
//
// Everything in this package is immutable after construction and safe for
// concurrent use.
package registration
