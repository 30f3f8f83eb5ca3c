package failure

// Reason identifies a single rule a credential can violate. The set of
// reasons is closed: every rule in this module maps to exactly one Reason,
// and none of them represents a system fault.
type Reason string

const (
	// ReasonInvalidEmail marks text that does not parse as an email address.
	ReasonInvalidEmail Reason = "invalid_email_format"

	// ReasonEmailBlocked marks a well-formed address found on the denylist.
	ReasonEmailBlocked Reason = "email_blocked"

	// ReasonInvalidPassword marks a password that fails the format policy.
	ReasonInvalidPassword Reason = "invalid_password_format"
)

// Valid reports whether r is one of the declared reasons.
func (r Reason) Valid() bool {
	switch r {
	case ReasonInvalidEmail, ReasonEmailBlocked, ReasonInvalidPassword:
		return true
	}
	return false
}

// String returns the machine-readable tag.
func (r Reason) String() string { return string(r) }

// Message returns the human-readable description of the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonInvalidEmail:
		return "must be a valid email address"
	case ReasonEmailBlocked:
		return "email address is not allowed"
	case ReasonInvalidPassword:
		return "password does not meet requirements"
	default:
		return "validation failed"
	}
}

// Error implements the error interface so a single Reason can be returned
// as an ordinary error value.
func (r Reason) Error() string { return r.Message() }
