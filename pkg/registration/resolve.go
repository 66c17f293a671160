package registration

// Resolve turns r into a User using the built-in region table.
// See RegionTable.Resolve.
func Resolve(r Request) (User, bool) {
	return defaultRegions.Resolve(r)
}

// Resolve builds each of the five User components from r independently and
// joins them. If any one is absent the result is the zero User and false;
// no partially built User is ever returned.
//
// Resolve does not apply the field validators: an age of 5 resolves fine.
// Run a Strategy first when the business rules matter.
func (t RegionTable) Resolve(r Request) (User, bool) {
	first, firstOK := NewFirstName(r.FirstName)
	last, lastOK := NewLastName(r.LastName)
	age, ageOK := NewAge(r.Age)
	gender, genderOK := ParseGender(r.Sex)
	region, regionOK := t.Lookup(r.Country)

	if !firstOK || !lastOK || !ageOK || !genderOK || !regionOK {
		return User{}, false
	}
	return NewUser(first, last, age, gender, region)
}
