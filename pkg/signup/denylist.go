package signup

import "strings"

// Denylist answers membership questions about known-bad email addresses.
// Implementations must be safe for concurrent use and side-effect free.
type Denylist interface {
	Blocked(email string) bool
}

// StaticDenylist is a fixed, in-memory Denylist. Membership is
// case-insensitive: addresses are folded to lower case on construction and
// on lookup.
type StaticDenylist map[string]struct{}

// NewStaticDenylist builds a StaticDenylist from the given addresses.
func NewStaticDenylist(addrs ...string) StaticDenylist {
	d := make(StaticDenylist, len(addrs))
	for _, addr := range addrs {
		d[strings.ToLower(addr)] = struct{}{}
	}
	return d
}

// Blocked reports whether email is on the list.
func (d StaticDenylist) Blocked(email string) bool {
	_, ok := d[strings.ToLower(email)]
	return ok
}
