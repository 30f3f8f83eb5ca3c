package credential

import (
	"net/mail"
	"strings"
	"unicode"
)

// DefaultEmailFormat reports whether value is an email address in the form
// typical web applications accept: RFC 5322 parseable with a non-empty
// local part and a dotted domain.
func DefaultEmailFormat(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// Reject display-name forms ("Bart <bart@example.com>") so the
	// accepted text is always the bare address.
	if addr.Address != value {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}

	localPart := parts[0]
	domain := parts[1]

	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	// Domain parts cannot be empty
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// PasswordPolicy describes the format requirements a password must meet.
type PasswordPolicy struct {
	MinLength    int
	RequireUpper bool
	RequireLower bool
	RequireDigit bool
}

// DefaultPasswordPolicy requires at least 8 characters and no particular
// character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: 8}
}

// Format returns the predicate enforcing the policy. The predicate is pure
// and safe to share across goroutines.
func (p PasswordPolicy) Format() func(string) bool {
	return func(value string) bool {
		if len([]rune(value)) < p.MinLength {
			return false
		}
		if p.RequireUpper && !strings.ContainsFunc(value, unicode.IsUpper) {
			return false
		}
		if p.RequireLower && !strings.ContainsFunc(value, unicode.IsLower) {
			return false
		}
		if p.RequireDigit && !strings.ContainsFunc(value, unicode.IsDigit) {
			return false
		}
		return true
	}
}
