package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	AutoMigrate bool

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

var ErrDatabaseURLMissing = errors.New("DATABASE_URL is not set")

// LoadConfig loads .env, reads the environment and applies defaults.
// It does not log, so the logger can depend on it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:        def(os.Getenv("PORT"), "5000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),

		Log:      strings.ToLower(os.Getenv("LOG")),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CORSAllowedOrigins: splitList(def(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	migrate, err := strconv.ParseBool(def(os.Getenv("DB_AUTO_MIGRATE"), "true"))
	if err != nil {
		return nil, errors.New("DB_AUTO_MIGRATE must be a boolean")
	}
	cfg.AutoMigrate = migrate

	timeout, err := time.ParseDuration(def(os.Getenv("SHUTDOWN_TIMEOUT"), "10s"))
	if err != nil {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be a duration such as 10s")
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// Validate returns warnings and a fatal error for settings the server cannot run without.
// There is deliberately no fallback connection string.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DatabaseURL == "" {
		return nil, ErrDatabaseURLMissing
	}
	if _, err := url.Parse(c.DatabaseURL); err != nil {
		return nil, errors.New("DATABASE_URL is not a valid URL")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 5000")
		c.Port = "5000"
	}
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" && c.Env == "prod" {
			warnings = append(warnings, "CORS allows any origin in prod")
			break
		}
	}

	return warnings, nil
}

// DSN returns the full connection string (with password).
func (c *Config) DSN() string {
	return c.DatabaseURL
}

// DSNSafe returns the connection string with the password masked, for logs.
func (c *Config) DSNSafe() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "<invalid DATABASE_URL>"
	}
	return u.Redacted()
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
