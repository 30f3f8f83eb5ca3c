package signup

import "github.com/dmitrymomot/credcheck/pkg/credential"

// Form is the untrusted input to Validate. Both fields may hold arbitrary
// text.
type Form struct {
	Email    string
	Password string
}

// Credentials is a fully validated signup record. Values can only be
// obtained from Validator.Validate, so holding one proves both fields
// passed every configured check.
type Credentials struct {
	email    credential.Email
	password credential.Password
}

// Email returns the validated email address.
func (c Credentials) Email() credential.Email { return c.email }

// Password returns the validated password.
func (c Credentials) Password() credential.Password { return c.password }
