package credential

// Email holds an address that satisfied the format predicate it was
// constructed with. The zero value represents "no address"; ParseEmail is
// the only way to obtain a non-zero Email.
type Email struct {
	addr string
}

// ParseEmail wraps raw if format accepts it. The wrapped text is the raw
// input exactly as given, with no normalization. A nil format falls back
// to DefaultEmailFormat.
func ParseEmail(raw string, format func(string) bool) (Email, bool) {
	if format == nil {
		format = DefaultEmailFormat
	}
	if !format(raw) {
		return Email{}, false
	}
	return Email{addr: raw}, true
}

// String returns the wrapped address.
func (e Email) String() string { return e.addr }

// Equal compares the wrapped text exactly. Case-insensitive comparison is
// a policy decision that belongs to the caller.
func (e Email) Equal(other Email) bool { return e.addr == other.addr }

// IsZero reports whether e is the zero value rather than a parsed address.
func (e Email) IsZero() bool { return e.addr == "" }
