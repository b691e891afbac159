package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Credential errors are configuration errors: they must be detected before
// any provider call is attempted and never conflated with API errors.
var (
	ErrCredentialMissing   = errors.New("STRIPE_SECRET_KEY is not set")
	ErrCredentialMalformed = errors.New("STRIPE_SECRET_KEY does not look like a Stripe secret key (expected sk_test_... or sk_live_...)")
)

// Config holds all process configuration, parsed once at startup.
type Config struct {
	App     App     `envPrefix:"APP_"`
	Stripe  Stripe  `envPrefix:"STRIPE_"`
	Metrics Metrics `envPrefix:"METRICS_"`
}

type App struct {
	Host    string `env:"HOST" envDefault:"localhost"`
	Port    string `env:"PORT" envDefault:"4000"`
	Env     string `env:"ENV" envDefault:"prod"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:4000"`
}

type Stripe struct {
	SecretKey  string        `env:"SECRET_KEY"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	MaxRetries int64         `env:"MAX_RETRIES" envDefault:"2"`
}

type Metrics struct {
	User     string `env:"USER" envDefault:"admin"`
	Password string `env:"PASSWORD"`
}

// Enabled reports whether the metrics endpoint may be exposed. There is no
// default password; an unset one keeps the endpoint off instead of serving
// it behind a guessable credential.
func (m Metrics) Enabled() bool {
	return m.Password != ""
}

// Load reads an optional .env file and parses the environment into a Config.
// A missing .env file is fine in production.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (a App) IsDev() bool {
	return a.Env == "dev"
}

// Address returns the host:port the HTTP server binds to.
func (a App) Address() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// ValidateCredential checks presence and shape of the secret key.
func (s Stripe) ValidateCredential() error {
	if s.SecretKey == "" {
		return ErrCredentialMissing
	}
	if !strings.HasPrefix(s.SecretKey, "sk_test_") && !strings.HasPrefix(s.SecretKey, "sk_live_") {
		return ErrCredentialMalformed
	}
	return nil
}

// LiveMode reports whether the credential is a live-mode key.
func (s Stripe) LiveMode() bool {
	return strings.HasPrefix(s.SecretKey, "sk_live_")
}
