package registration

import "github.com/dmitrymomot/signup/pkg/sanitizer"

var cleanCountry = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

// Normalize returns a cleaned copy of r: control characters are removed,
// whitespace is collapsed, names get capitalized words and the sex code is
// upper-cased. Age is left alone.
//
// Normalization is opt-in. Validators and resolvers never call it, so
// "m" stays an invalid sex code unless the caller normalizes first.
func Normalize(r Request) Request {
	return Request{
		FirstName: sanitizer.PersonName(r.FirstName),
		LastName:  sanitizer.PersonName(r.LastName),
		Age:       r.Age,
		Sex:       sanitizer.Code(r.Sex),
		Country:   cleanCountry(r.Country),
	}
}
