package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment at startup. Rate limits are tuned
// separately through the RATELIMIT_* variables read by pkg/httpx.
type Config struct {
	Issuer         string `env:"LEASEHOLD_ISSUER"          envDefault:"leasehold"`
	PublicBaseURL  string `env:"LEASEHOLD_PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseFile   string `env:"LEASEHOLD_DATABASE_FILE"   envDefault:"leasehold.db"`
	PepperFile     string `env:"LEASEHOLD_PEPPER_FILE"     envDefault:"pepper"`
	BootstrapToken string `env:"LEASEHOLD_BOOTSTRAP_TOKEN"` // empty disables /v1/bootstrap

	InvitationTTL time.Duration `env:"LEASEHOLD_INVITATION_TTL" envDefault:"168h"`
	SessionTTL    time.Duration `env:"LEASEHOLD_SESSION_TTL"    envDefault:"15m"`
	SigningKeys   int           `env:"LEASEHOLD_SIGNING_KEYS"   envDefault:"2"`

	Env                  string        `env:"ENV"                   envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                 int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	// InvitationRetention is how long past expiry a never-redeemed
	// invitation is kept. Zero keeps them forever.
	InvitationRetention time.Duration `env:"INVITATION_RETENTION" envDefault:"0"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Issuer == "" {
		errs = append(errs, errors.New("LEASEHOLD_ISSUER must not be empty"))
	}
	if u, err := url.Parse(c.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("LEASEHOLD_PUBLIC_BASE_URL must be an absolute URL, got %q", c.PublicBaseURL))
	}
	if c.InvitationTTL <= 0 {
		errs = append(errs, errors.New("LEASEHOLD_INVITATION_TTL must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("LEASEHOLD_SESSION_TTL must be positive"))
	}
	if c.SigningKeys < 1 || c.SigningKeys > 10 {
		errs = append(errs, fmt.Errorf("LEASEHOLD_SIGNING_KEYS must be between 1 and 10, got %d", c.SigningKeys))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.InvitationRetention < 0 {
		errs = append(errs, errors.New("INVITATION_RETENTION must not be negative"))
	}

	return errors.Join(errs...)
}
