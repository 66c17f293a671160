package registration

import "github.com/dmitrymomot/signup/pkg/validator"

// Age band accepted at registration: MinAge <= age < MaxAge.
const (
	MinAge = 18
	MaxAge = 150
)

// Messages reported by the field validators. The age and sex formats take
// the offending value.
const (
	MsgFieldsRequired = "Please fill in all required fields"
	MsgInvalidAge     = "Invalid age of %v"
	MsgInvalidSex     = "Invalid sex of %v"
)

// Field keys attached to the reported validation errors.
const (
	FieldRequired = "fields"
	FieldAge      = "age"
	FieldSex      = "sex"
)

var (
	fieldsNotEmpty = validator.FromRule(func(r Request) validator.Rule {
		return validator.Group(FieldRequired, MsgFieldsRequired,
			validator.RequiredString("first_name", r.FirstName),
			validator.RequiredString("last_name", r.LastName),
			validator.RequiredNum("age", r.Age),
			validator.RequiredString("sex", r.Sex),
			validator.RequiredString("country", r.Country),
		)
	})

	validAge = validator.FromRule(func(r Request) validator.Rule {
		return validator.InRange(FieldAge, r.Age, MinAge, MaxAge, MsgInvalidAge)
	})

	validGender = validator.FromRule(func(r Request) validator.Rule {
		return validator.InList(FieldSex, r.Sex, genderCodes, MsgInvalidSex)
	})
)

// FieldsNotEmpty fails when any of the five fields is empty or, for age,
// zero. It does not say which field is missing.
func FieldsNotEmpty(r Request) (Request, error) { return fieldsNotEmpty(r) }

// ValidAge fails unless MinAge <= r.Age < MaxAge.
func ValidAge(r Request) (Request, error) { return validAge(r) }

// ValidGender fails unless r.Sex is one of "M", "F" or "X".
func ValidGender(r Request) (Request, error) { return validGender(r) }

// Validators returns the field validators in evaluation order:
// completeness, age, gender.
func Validators() []validator.Validator[Request] {
	return []validator.Validator[Request]{FieldsNotEmpty, ValidAge, ValidGender}
}
