package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied to empty fields.
const (
	DefaultAddr        = ":8083"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultMetricsPath = "/metrics"
)

var (
	ErrSecretRequired = errors.New("jwt.secret is required (set JWT_SECRET)")
	ErrUnknownLevel   = errors.New("unknown logging.level")
	ErrUnknownFormat  = errors.New("unknown logging.format")
	ErrMetricsPath    = errors.New("metrics.path must start with / and cannot be / itself")
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config represents the complete jwtgate server configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	JWT     JWTConfig     `yaml:"jwt"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig holds the listen address
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// JWTConfig holds the shared HMAC secret
type JWTConfig struct {
	Secret Secret `yaml:"secret"`
}

const redacted = "[REDACTED]"

// Secret is the configured HMAC key. It prints, marshals and logs as
// "[REDACTED]"; Bytes returns the key itself.
type Secret string

// Bytes returns the raw key.
func (s Secret) Bytes() []byte {
	return []byte(s)
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

// MarshalText keeps the key out of YAML and JSON dumps of a Config.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from SERVER_ADDR, JWT_SECRET, LOG_LEVEL,
// LOG_FORMAT and METRICS_PATH. Metrics are enabled unless METRICS_PATH is "-".
func FromEnv() (*Config, error) {
	cfg := Config{
		Server:  ServerConfig{Addr: os.Getenv("SERVER_ADDR")},
		JWT:     JWTConfig{Secret: Secret(os.Getenv("JWT_SECRET"))},
		Logging: LoggingConfig{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT")},
		Metrics: MetricsConfig{Enabled: true, Path: os.Getenv("METRICS_PATH")},
	}
	if cfg.Metrics.Path == "-" {
		cfg.Metrics = MetricsConfig{}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrSecretRequired
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w %q", ErrUnknownLevel, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, c.Logging.Format)
	}

	// "/" is where the gated API is mounted.
	if c.Metrics.Enabled && (!strings.HasPrefix(c.Metrics.Path, "/") || c.Metrics.Path == "/") {
		return fmt.Errorf("%w, got %q", ErrMetricsPath, c.Metrics.Path)
	}

	return nil
}
