package domain

// PersonInput is the raw, untrusted input as received from a client. Missing
// values are represented by empty strings.
type PersonInput struct {
	FullName string
	Age      string
	Height   string
}

// Person is an accepted input. FullName and Height are kept exactly as they
// were submitted; Age is the parsed integer.
type Person struct {
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	Height   string `json:"height"`
}
