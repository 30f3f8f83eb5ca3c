// Package failure defines the closed vocabulary of reasons a credential can
// be rejected, and an ordered collection type for accumulating reasons from
// independently evaluated checks.
//
// Both Reason and List implement the error interface, so validation outcomes
// travel through ordinary error returns while staying machine-inspectable.
// A List preserves the order in which checks were evaluated; concatenating
// two lists keeps that order (it is associative, not commutative).
//
// # Usage
//
//	email, ok := credential.ParseEmail(raw, nil)
//	email, err := failure.TagList(email, ok, failure.ReasonInvalidEmail)
//
//	if reasons := failure.FromError(err); reasons != nil {
//	    for _, r := range reasons {
//	        // map r to an API error code, translation key, etc.
//	    }
//	}
//
// The package has no hidden state and every value is immutable after
// construction, so it is safe for concurrent use.
package failure
