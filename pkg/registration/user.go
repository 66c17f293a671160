package registration

// FirstName is a non-empty given name. It is deliberately a different type
// from LastName so the two cannot be swapped by accident.
type FirstName struct {
	value string
}

// NewFirstName wraps s. It reports false for empty text.
func NewFirstName(s string) (FirstName, bool) {
	if s == "" {
		return FirstName{}, false
	}
	return FirstName{value: s}, true
}

func (n FirstName) String() string { return n.value }

// LastName is a non-empty family name.
type LastName struct {
	value string
}

// NewLastName wraps s. It reports false for empty text.
func NewLastName(s string) (LastName, bool) {
	if s == "" {
		return LastName{}, false
	}
	return LastName{value: s}, true
}

func (n LastName) String() string { return n.value }

// Age is a strictly positive number of years.
//
// Invariant: Int() >= 1. This is weaker than the [MinAge, MaxAge) business
// rule enforced by ValidAge; both exist on purpose.
type Age struct {
	value int
}

// NewAge reports false when years is zero or negative.
func NewAge(years int) (Age, bool) {
	if years < 1 {
		return Age{}, false
	}
	return Age{value: years}, true
}

func (a Age) Int() int { return a.value }

// User is a registered person whose every field already satisfied its own
// constraint. The only way to obtain a non-zero User is NewUser.
type User struct {
	firstName FirstName
	lastName  LastName
	age       Age
	gender    Gender
	region    Region
}

// NewUser assembles a User from parts produced by their smart constructors.
// Zero-value parts (FirstName{}, Age{}, a nil Gender or Region) are the only
// invalid values a caller can still hold; NewUser reports false for them and
// returns the zero User.
func NewUser(first FirstName, last LastName, age Age, gender Gender, region Region) (User, bool) {
	if first == (FirstName{}) || last == (LastName{}) || age == (Age{}) || gender == nil || region == nil {
		return User{}, false
	}
	return User{
		firstName: first,
		lastName:  last,
		age:       age,
		gender:    gender,
		region:    region,
	}, true
}

func (u User) FirstName() FirstName { return u.firstName }
func (u User) LastName() LastName   { return u.lastName }
func (u User) Age() Age             { return u.age }
func (u User) Gender() Gender       { return u.gender }
func (u User) Region() Region       { return u.region }

// IsZero reports whether u is the zero User returned alongside a failure.
// NewUser never builds a User with a nil region, so checking it is enough.
func (u User) IsZero() bool {
	return u.region == nil
}
