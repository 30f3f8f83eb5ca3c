// Package signup validates a raw email/password form into typed
// credentials, reporting every violated rule in a single pass.
//
// The two fields are checked independently: an invalid password is still
// reported when the email is also invalid, so a caller can fix all problems
// in one resubmission instead of discovering them one round trip at a time.
// Failures come back as a failure.List in a fixed order, email reasons
// before password reasons.
//
// The email side runs two stages: a format gate, then a denylist lookup
// that only ever sees an already well-formed address. A format failure and
// a denylist hit are therefore mutually exclusive and each surfaces as its
// own single reason.
//
// # Architecture
//
// Validator holds the injected email/password format predicates, the
// Denylist, and an optional logger. It is immutable after New, carries no
// other state, and a single instance can serve any number of concurrent
// Validate calls. Each field check produces a (value, error) pair; an
// explicit combine step then merges the two outcomes without letting either
// short-circuit the other.
//
// # Usage
//
//	v := signup.New(
//	    signup.WithDenylist(signup.NewStaticDenylist("bart@simsom.com")),
//	)
//
//	creds, err := v.Validate(signup.Form{
//	    Email:    "bart@simsom.com",
//	    Password: "short",
//	})
//	if err != nil {
//	    reasons := failure.FromError(err)
//	    // reasons == [email_blocked, invalid_password_format]
//	}
//	_ = creds
//
// Environment-driven setups can build the validator from a Config loaded
// with LoadConfig, see FromConfig.
package signup
