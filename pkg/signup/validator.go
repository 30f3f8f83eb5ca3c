package signup

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/credcheck/pkg/credential"
	"github.com/dmitrymomot/credcheck/pkg/failure"
)

// Validator checks signup forms against the configured email and password
// rules. It is immutable after New and safe for concurrent use.
type Validator struct {
	emailFormat    func(string) bool
	passwordFormat func(string) bool
	denylist       Denylist
	log            *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithEmailFormat replaces the email format predicate. The predicate must
// be pure and total.
func WithEmailFormat(format func(string) bool) Option {
	return func(v *Validator) {
		if format != nil {
			v.emailFormat = format
		}
	}
}

// WithPasswordFormat replaces the password format predicate. The predicate
// must be pure and total.
func WithPasswordFormat(format func(string) bool) Option {
	return func(v *Validator) {
		if format != nil {
			v.passwordFormat = format
		}
	}
}

// WithDenylist sets the denylist consulted after the email format check.
func WithDenylist(d Denylist) Option {
	return func(v *Validator) {
		if d != nil {
			v.denylist = d
		}
	}
}

// WithLogger sets a logger for debug output on rejected forms.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New builds a Validator. Without options it uses
// credential.DefaultEmailFormat, the default password policy, an empty
// denylist and a discarded logger.
func New(opts ...Option) *Validator {
	v := &Validator{
		emailFormat:    credential.DefaultEmailFormat,
		passwordFormat: credential.DefaultPasswordPolicy().Format(),
		denylist:       NewStaticDenylist(),
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks form and returns the validated credentials, or an error
// listing every rule the form violates. The two fields are evaluated
// independently, so a password failure is reported even when the email
// already failed. On failure the returned error is always a failure.List
// with email reasons before password reasons.
func (v *Validator) Validate(form Form) (Credentials, error) {
	email, emailErr := v.checkEmail(form.Email)
	password, passwordErr := v.checkPassword(form.Password)

	creds, err := combine(email, emailErr, password, passwordErr)
	if err != nil {
		v.log.Debug("signup form rejected",
			slog.Any("reasons", failure.FromError(err).Tags()))
		return Credentials{}, err
	}
	return creds, nil
}

// checkEmail runs the format gate and, only after it passes, the denylist
// lookup. The denylist never sees raw text.
func (v *Validator) checkEmail(raw string) (credential.Email, error) {
	email, ok := credential.ParseEmail(raw, v.emailFormat)
	email, err := failure.TagList(email, ok, failure.ReasonInvalidEmail)
	if err != nil {
		return credential.Email{}, err
	}
	if err := v.checkDenylist(email); err != nil {
		return credential.Email{}, err
	}
	return email, nil
}

// checkDenylist is the dependent stage. It takes a constructed Email, so
// the format check has provably already passed.
func (v *Validator) checkDenylist(email credential.Email) error {
	if v.denylist.Blocked(email.String()) {
		return failure.List{failure.ReasonEmailBlocked}
	}
	return nil
}

func (v *Validator) checkPassword(raw string) (credential.Password, error) {
	password, ok := credential.ParsePassword(raw, v.passwordFormat)
	return failure.TagList(password, ok, failure.ReasonInvalidPassword)
}

// combine merges the outcomes of the two independent field checks. Neither
// failure short-circuits the other; when both fields failed, the reasons
// are concatenated with the email reasons first. Order depends only on
// field identity, never on which check happened to run first.
func combine(email credential.Email, emailErr error, password credential.Password, passwordErr error) (Credentials, error) {
	switch {
	case emailErr == nil && passwordErr == nil:
		return Credentials{email: email, password: password}, nil
	case emailErr != nil && passwordErr != nil:
		return Credentials{}, failure.Concat(failure.FromError(emailErr), failure.FromError(passwordErr))
	case emailErr != nil:
		return Credentials{}, failure.FromError(emailErr)
	default:
		return Credentials{}, failure.FromError(passwordErr)
	}
}
