package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPrefix      = "OMG_WEB_"
	defaultEnvFile = ".env"
	defaultPort    = "8080"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Env        string `env:"ENV" envDefault:"local"`
	DevMode    bool   `env:"DEV"`
	SiteURL    string `env:"SITE_URL" envDefault:"https://omgagents.ai"`
	ContentDir string `env:"CONTENT_DIR" envDefault:"content"`
	PublicDir  string `env:"PUBLIC_DIR" envDefault:"public"`

	Server    ServerConfig    `envPrefix:"SERVER_"`
	Session   SessionConfig   `envPrefix:"SESSION_"`
	Relay     RelayConfig     `envPrefix:"RELAY_"`
	Contact   ContactConfig   `envPrefix:"CONTACT_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	Analytics AnalyticsConfig `envPrefix:"ANALYTICS_"`
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string        `env:"PORT"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy        bool          `env:"TRUST_PROXY" envDefault:"false"`
}

// SessionConfig holds the cookie signing material.
type SessionConfig struct {
	HashKey  string `env:"HASH_KEY"`
	BlockKey string `env:"BLOCK_KEY"`
}

// RelayConfig points the contact form at the third-party forms relay.
type RelayConfig struct {
	Endpoint  string        `env:"ENDPOINT" envDefault:"https://api.web3forms.com/submit"`
	AccessKey string        `env:"ACCESS_KEY" envDefault:"ac444ad6-a13d-41b6-869c-6b41c9c67456"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"20s"`
}

// ContactConfig tunes the anti-spam heuristics of the contact form.
type ContactConfig struct {
	MinDwell       time.Duration `env:"MIN_DWELL" envDefault:"5s"`
	MaxFiles       int           `env:"MAX_FILES" envDefault:"5"`
	MaxFileSize    int64         `env:"MAX_FILE_SIZE" envDefault:"10485760"`
	SuccessDisplay time.Duration `env:"SUCCESS_DISPLAY" envDefault:"5s"`
}

// RateLimitConfig controls the submission throttle. An empty RedisURL keeps
// the limiter in process memory.
type RateLimitConfig struct {
	Window   time.Duration `env:"WINDOW" envDefault:"30s"`
	RedisURL string        `env:"REDIS_URL"`
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to the layout.
type AnalyticsConfig struct {
	GA4MeasurementID string `env:"GA_MEASUREMENT_ID"`
	GTMContainerID   string `env:"GTM_CONTAINER_ID"`
}

// IsProduction reports whether the service runs with production hardening.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "prod")
}

// Addr returns the listen address derived from the configured port.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment, relying only on
// provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration by combining defaults, .env overrides,
// environment variables and explicit maps (in increasing precedence).
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := environmentValues(options)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: values,
		Prefix:      envPrefix,
	}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	// Port resolution: prefer OMG_WEB_SERVER_PORT, then the platform's PORT, else 8080.
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = values["PORT"]
	}
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = defaultPort
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func environmentValues(options loaderOptions) (map[string]string, error) {
	values := make(map[string]string)

	dotEnv, err := loadDotEnv(options.envFile)
	if err != nil {
		return nil, err
	}
	for k, v := range dotEnv {
		values[k] = v
	}

	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if !ok || strings.TrimSpace(key) == "" {
				continue
			}
			values[key] = value
		}
	}

	for k, v := range options.envMap {
		values[k] = v
	}
	return values, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

func validateConfig(cfg Config) error {
	var missing []string
	if cfg.IsProduction() && strings.TrimSpace(cfg.Session.HashKey) == "" {
		missing = append(missing, "Session.HashKey")
	}
	if key := cfg.Session.BlockKey; key != "" {
		switch len(key) {
		case 16, 24, 32:
		default:
			missing = append(missing, "Session.BlockKey")
		}
	}
	if strings.TrimSpace(cfg.Relay.Endpoint) == "" {
		missing = append(missing, "Relay.Endpoint")
	}
	if strings.TrimSpace(cfg.Relay.AccessKey) == "" {
		missing = append(missing, "Relay.AccessKey")
	}
	if cfg.Contact.MaxFiles <= 0 {
		missing = append(missing, "Contact.MaxFiles")
	}
	if cfg.Contact.MaxFileSize <= 0 {
		missing = append(missing, "Contact.MaxFileSize")
	}
	if cfg.RateLimit.Window < 0 {
		missing = append(missing, "RateLimit.Window")
	}
	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}
