package registration

// Request is an untrusted registration submission. None of its fields are
// checked; any of them may be empty, negative or nonsensical.
type Request struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Sex       string `json:"sex"`
	Country   string `json:"country"`
}
