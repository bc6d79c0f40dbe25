package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration. Everything is environment-driven;
// a .env file is loaded by main before parsing when present.
type Config struct {
	Port    string `env:"PORT" envDefault:"5000"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Postgres connection string
	DatabaseDSN string `env:"DATABASE_DSN"`

	// Token signing
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`

	// Google sign-in
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// OTP lifecycle. The resend throttle only takes effect when Redis is
	// configured.
	OTPTTL          time.Duration `env:"OTP_TTL" envDefault:"5m"`
	OTPResendWindow time.Duration `env:"OTP_RESEND_WINDOW" envDefault:"60s"`

	// Echo issued codes in API responses. Demo convenience, switch off in
	// production.
	OTPDemoExpose bool `env:"OTP_DEMO_EXPOSE" envDefault:"true"`

	// Optional Redis, used for OTP resend throttling
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Optional SMTP for OTP delivery; codes are logged when unset
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// Static single-page frontend served for non-API routes
	StaticDir string `env:"STATIC_DIR" envDefault:"./public"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("missing DATABASE_DSN environment variable")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return &cfg, nil
}
