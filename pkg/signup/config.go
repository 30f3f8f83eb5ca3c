package signup

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/credcheck/pkg/credential"
)

// Config carries the environment-driven validation settings. Anything not
// expressible as plain configuration (a custom email format, a dynamic
// denylist) is supplied through Options instead.
type Config struct {
	PasswordMinLength    int      `env:"SIGNUP_PASSWORD_MIN_LENGTH" envDefault:"8"`
	PasswordRequireMixed bool     `env:"SIGNUP_PASSWORD_REQUIRE_MIXED" envDefault:"false"`
	BlockedEmails        []string `env:"SIGNUP_BLOCKED_EMAILS" envSeparator:","`
}

// ErrParsingConfig is returned when the environment cannot be parsed into
// a Config.
var ErrParsingConfig = errors.New("failed to parse signup config from environment")

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists in the working directory.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// FromConfig builds a Validator from cfg. Extra options are applied after
// the config-derived ones, so they win on conflict.
func FromConfig(cfg Config, opts ...Option) *Validator {
	policy := credential.PasswordPolicy{
		MinLength:    cfg.PasswordMinLength,
		RequireUpper: cfg.PasswordRequireMixed,
		RequireLower: cfg.PasswordRequireMixed,
		RequireDigit: cfg.PasswordRequireMixed,
	}

	base := []Option{
		WithPasswordFormat(policy.Format()),
		WithDenylist(NewStaticDenylist(cfg.BlockedEmails...)),
	}
	return New(append(base, opts...)...)
}
