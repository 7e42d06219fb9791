// Package validation holds the pure field-level predicates that gate every
// mutation.  The predicates never consult the store and never mutate; they
// run strictly before any service call that would write data.
package validation

import "regexp"

// The patterns are the API contract for account fields.  Email requires at
// least two domain segments; password and names are bounded alphanumerics;
// about is bounded free text.
var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	aboutRe    = regexp.MustCompile(`^[a-zA-Z0-9 .\-:;]{3,255}$`)
)

// MinID and MaxID bound the legacy numeric identifier.
const (
	MinID = 0
	MaxID = 2020
)

// Login reports whether an (email, password) pair is well formed.  The pair
// validates together: a missing field fails regardless of the other.
func Login(email, password string) bool {
	return emailRe.MatchString(email) && passwordRe.MatchString(password)
}

// User reports whether a full set of account details is well formed.  Used
// by both registration and update.
func User(id int, email, givenName, familyName, password, about string) bool {
	if id < MinID || id > MaxID {
		return false
	}
	if !emailRe.MatchString(email) {
		return false
	}
	if !nameRe.MatchString(givenName) || !nameRe.MatchString(familyName) {
		return false
	}
	if !passwordRe.MatchString(password) {
		return false
	}
	return aboutRe.MatchString(about)
}
