// Package config loads and validates application configuration.
//
// Values are resolved in three layers, each overriding the previous one:
// built-in defaults, an optional TOML file named by CONFIG_FILE, and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Tracing exporters accepted in TRACING_EXPORTER.
const (
	TracingNone   = "none"
	TracingStdout = "stdout"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `toml:"port" env:"PORT"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `toml:"database_url" env:"DATABASE_URL"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	// CORSOrigins lists the origins allowed to call the API.
	// CORS_ORIGINS takes a comma-separated list.
	CORSOrigins []string `toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`

	// MaxBodyBytes caps request body size. Zero disables the limit.
	MaxBodyBytes int64 `toml:"max_body_bytes" env:"MAX_BODY_BYTES"`

	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool `toml:"auto_migrate" env:"AUTO_MIGRATE"`

	// TracingExporter selects where spans go: none or stdout.
	TracingExporter string `toml:"tracing_exporter" env:"TRACING_EXPORTER"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "info",
		CORSOrigins:     []string{"http://localhost:5173"},
		MaxBodyBytes:    1 << 20,
		AutoMigrate:     true,
		TracingExporter: TracingNone,
	}
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom resolves configuration against the given environment. It returns
// an error naming every required variable that is not set and every value
// that is out of range.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg := Defaults()

	if path := environ["CONFIG_FILE"]; path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("required environment variables not set: DATABASE_URL"))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel))
	}
	if c.TracingExporter != TracingNone && c.TracingExporter != TracingStdout {
		errs = append(errs, fmt.Errorf("TRACING_EXPORTER must be %q or %q; got %q", TracingNone, TracingStdout, c.TracingExporter))
	}
	if c.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must not be negative; got %d", c.MaxBodyBytes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
