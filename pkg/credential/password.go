package credential

import "golang.org/x/crypto/bcrypt"

// Password holds a secret that satisfied the format predicate it was
// constructed with. The zero value represents "no password"; ParsePassword
// is the only way to obtain a non-zero Password.
type Password struct {
	secret string
}

// ParsePassword wraps raw if format accepts it. The wrapped text is the
// raw input exactly as given. A nil format falls back to the default
// password policy.
func ParsePassword(raw string, format func(string) bool) (Password, bool) {
	if format == nil {
		format = DefaultPasswordPolicy().Format()
	}
	if !format(raw) {
		return Password{}, false
	}
	return Password{secret: raw}, true
}

// String redacts the secret so a Password cannot leak through logs or
// formatted output. Use Reveal to read the wrapped text.
func (p Password) String() string { return "[REDACTED]" }

// Reveal returns the wrapped text exactly as given to ParsePassword.
func (p Password) Reveal() string { return p.secret }

// IsZero reports whether p is the zero value rather than a parsed password.
func (p Password) IsZero() bool { return p.secret == "" }

// Hash derives a bcrypt hash of the password. Cost values outside the
// bcrypt range fall back to bcrypt.DefaultCost.
func (p Password) Hash(cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(p.secret), cost)
}

// VerifyPassword reports whether hash was derived from raw.
func VerifyPassword(hash []byte, raw string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(raw)) == nil
}
