// Package sanitizer provides small string clean-up helpers and a way to chain
// them.
//
// Every helper is a func(string) string, so helpers can be combined with
// Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	)
//
//	clean("  John \n  Doe ") // "John Doe"
//
// PersonName and Code are the ready-made pipelines used when normalizing
// registration input. Title casing relies on golang.org/x/text/cases.
//
// Sanitizers never reject input. Deciding whether a cleaned value is
// acceptable is the job of the validator package.
package sanitizer
