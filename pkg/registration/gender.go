package registration

import "fmt"

// Gender is a closed union of Male, Female and NonBinary. Like Region, the
// unexported marker method keeps other packages from adding variants, so a
// code outside "M", "F" and "X" has no Gender value.
type Gender interface {
	fmt.Stringer
	// Code returns the single letter code: "M", "F" or "X".
	Code() string
	gender()
}

type (
	Male      struct{}
	Female    struct{}
	NonBinary struct{}
)

func (Male) gender()      {}
func (Female) gender()    {}
func (NonBinary) gender() {}

func (Male) Code() string      { return "M" }
func (Female) Code() string    { return "F" }
func (NonBinary) Code() string { return "X" }

func (Male) String() string      { return "Male" }
func (Female) String() string    { return "Female" }
func (NonBinary) String() string { return "NonBinary" }

// genderCodes lists the recognised codes in a stable order.
var genderCodes = []string{Male{}.Code(), Female{}.Code(), NonBinary{}.Code()}

// ParseGender maps "M", "F" and "X" to their Gender. Any other code,
// including lower-case variants, reports false.
func ParseGender(code string) (Gender, bool) {
	switch code {
	case "M":
		return Male{}, true
	case "F":
		return Female{}, true
	case "X":
		return NonBinary{}, true
	default:
		return nil, false
	}
}

// MatchGender calls exactly one of the handlers depending on the variant of g.
// A nil Gender yields the zero T.
func MatchGender[T any](g Gender, male, female, nonBinary func() T) T {
	switch g.(type) {
	case Male:
		return male()
	case Female:
		return female()
	case NonBinary:
		return nonBinary()
	default:
		var zero T
		return zero
	}
}
