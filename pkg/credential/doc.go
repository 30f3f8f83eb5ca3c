// Package credential provides smart constructors for email and password
// values. Both types hide their text behind unexported fields, so the only
// way to obtain a non-zero Email or Password is through its constructor,
// and holding one proves the text satisfied the format predicate the
// constructor was given.
//
// Constructors are pure and report rejection through a comma-ok second
// return, never an error or a panic. Predicates are injected so the
// embedding application decides what counts as well-formed; the package
// ships sensible defaults (DefaultEmailFormat, DefaultPasswordPolicy) for
// the common case.
//
// # Usage
//
//	email, ok := credential.ParseEmail("bart@example.com", nil)
//	if !ok {
//	    // reject the input
//	}
//
//	policy := credential.PasswordPolicy{MinLength: 12, RequireDigit: true}
//	password, ok := credential.ParsePassword(raw, policy.Format())
//
// Password values redact themselves when printed; use Reveal to read the
// secret, and Hash to derive a bcrypt hash for storage.
package credential
