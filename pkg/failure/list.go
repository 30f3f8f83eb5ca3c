package failure

import (
	"errors"
	"strings"
)

// List is an ordered collection of reasons accumulated from independently
// evaluated checks. The order is the evaluation order of the checks that
// produced it, not severity.
type List []Reason

// NewList builds a List holding the given reasons in order.
func NewList(reasons ...Reason) List {
	if len(reasons) == 0 {
		return nil
	}
	out := make(List, len(reasons))
	copy(out, reasons)
	return out
}

// Error implements the error interface.
func (l List) Error() string {
	if len(l) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(l))
	for _, r := range l {
		parts = append(parts, r.Message())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Append returns a new List with r added at the end. The receiver is never
// modified, so lists can be shared freely.
func (l List) Append(r Reason) List {
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	return append(out, r)
}

// Has reports whether r occurs anywhere in the list.
func (l List) Has(r Reason) bool {
	for _, got := range l {
		if got == r {
			return true
		}
	}
	return false
}

// First returns the earliest accumulated reason, or the zero Reason when
// the list is empty.
func (l List) First() Reason {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Tags returns the machine-readable tags in accumulation order.
func (l List) Tags() []string {
	tags := make([]string, 0, len(l))
	for _, r := range l {
		tags = append(tags, r.String())
	}
	return tags
}

// IsEmpty reports whether the list holds no reasons.
func (l List) IsEmpty() bool {
	return len(l) == 0
}

// Concat joins two lists into a new one, all reasons from a followed by all
// reasons from b. Concatenation is associative but not commutative: the
// result order reflects which checks ran first.
func Concat(a, b List) List {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(List, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// FromError extracts the reasons carried by err. A bare Reason promotes to
// a single-element List. Returns nil when err carries no reasons.
func FromError(err error) List {
	if err == nil {
		return nil
	}

	var list List
	if errors.As(err, &list) {
		return list
	}

	var reason Reason
	if errors.As(err, &reason) {
		return List{reason}
	}

	return nil
}

// IsFailure reports whether err carries validation reasons, as opposed to
// being some other kind of error.
func IsFailure(err error) bool {
	return len(FromError(err)) > 0
}
