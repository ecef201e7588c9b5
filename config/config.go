package config

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	// Cal.com Configuration
	CalCom CalComConfig `env:", prefix=CAL_"`

	// Google Calendar Configuration
	Google GoogleConfig `env:", prefix=GOOGLE_"`

	// Server Configuration
	Server ServerConfig

	// Logging Configuration
	Logging LoggingConfig `env:", prefix=LOG_"`

	// TLS Configuration
	TLS TLSConfig `env:", prefix=TLS_"`

	// Application Configuration
	App AppConfig `env:", prefix=APP_"`

	// Webhook Configuration
	Webhook WebhookConfig `env:", prefix=WEBHOOK_"`
}

// CalComConfig holds Cal.com booking related configuration.
// Setting APIKey selects Cal.com as the calendar provider.
type CalComConfig struct {
	// APIKey is the Cal.com API key sent as a bearer token
	APIKey string `env:"API_KEY"`

	// EventTypeID is the numeric event type to book. Kept as a string so a
	// malformed value is reported as missing config rather than failing start-up.
	EventTypeID string `env:"EVENT_TYPE_ID"`

	// Username is the Cal.com user owning EventTypeSlug
	Username string `env:"USERNAME"`

	// EventTypeSlug is the event type slug, used together with Username
	EventTypeSlug string `env:"EVENT_TYPE_SLUG"`

	// AttendeeTimeZone is the IANA zone sent as the attendee's time zone
	AttendeeTimeZone string `env:"ATTENDEE_TIMEZONE, default=Asia/Kolkata"`

	// BaseURL is the Cal.com v2 API root
	BaseURL string `env:"API_BASE_URL, default=https://api.cal.com/v2"`
}

// GoogleConfig holds Google Calendar API related configuration
type GoogleConfig struct {
	// ClientEmail is the service account email (used with PrivateKey)
	ClientEmail string `env:"CLIENT_EMAIL"`

	// PrivateKey is the PEM private key of the service account. Escaped
	// newlines ("\n") are accepted.
	PrivateKey string `env:"PRIVATE_KEY"`

	// CredentialsJSON contains the full service account credentials in JSON format
	CredentialsJSON string `env:"CREDENTIALS_JSON"`

	// CredentialsPath is the path to a Google credentials file
	CredentialsPath string `env:"APPLICATION_CREDENTIALS"`

	// CalendarID is the target Google Calendar ID; empty means GoogleCalendarID's default
	CalendarID string `env:"CALENDAR_ID"`
}

// ServerConfig holds HTTP server related configuration
type ServerConfig struct {
	// Port is the port the server will listen on
	Port string `env:"PORT, default=3000"`

	// Host is the host the server will bind to
	Host string `env:"HOST, default=0.0.0.0"`

	// Mode sets the Gin server mode (debug, release, test)
	Mode string `env:"GIN_MODE, default=release"`

	// EnableTLS determines if HTTPS should be enabled
	EnableTLS bool `env:"SERVER_ENABLE_TLS, default=false"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT, default=10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT, default=30s"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT, default=60s"`
}

// LoggingConfig holds logging related configuration
type LoggingConfig struct {
	// Level sets the log level (debug, info, warn, error)
	Level string `env:"LEVEL, default=info"`

	// Format sets the log format (json, console)
	Format string `env:"FORMAT, default=json"`

	// Output sets the log output destination (stdout, stderr, file path)
	Output string `env:"OUTPUT, default=stdout"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"ENABLE_CALLER, default=true"`

	// EnableStacktrace adds stacktrace to error level logs
	EnableStacktrace bool `env:"ENABLE_STACKTRACE, default=false"`
}

// TLSConfig holds TLS/HTTPS related configuration
type TLSConfig struct {
	// CertPath is the path to the TLS certificate file
	CertPath string `env:"CERT_PATH"`

	// KeyPath is the path to the TLS private key file
	KeyPath string `env:"KEY_PATH"`

	// MinVersion sets the minimum TLS version (1.2, 1.3)
	MinVersion string `env:"MIN_VERSION, default=1.2"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	// Environment specifies the deployment environment (dev, staging, prod)
	Environment string `env:"ENVIRONMENT, default=dev"`

	// MaxRequestSize sets the maximum request body size in bytes
	MaxRequestSize int64 `env:"MAX_REQUEST_SIZE, default=1048576"` // 1MB

	// ProviderTimeout bounds a single booking call against the calendar provider
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT, default=15s"`

	// CORSAllowedOrigins is the list of origins allowed by CORS, "*" allows all
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*"`
}

// WebhookConfig holds settings for the inbound tool-call webhook
type WebhookConfig struct {
	// Secret, when set, must be presented in the X-Vapi-Secret header
	Secret string `env:"SECRET"`

	// RateLimit is the number of webhook requests per second allowed per client IP (0 disables)
	RateLimit float64 `env:"RATE_LIMIT, default=0"`

	// RateBurst is the burst size for RateLimit
	RateBurst int `env:"RATE_BURST, default=10"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithLookuper loads configuration using a custom lookuper (useful for testing)
func LoadWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration values. A missing calendar provider is
// not a validation error: it is reported by the health endpoint and in every
// tool-call result instead.
func (c *Config) Validate() error {
	if c.Server.EnableTLS {
		if c.TLS.CertPath == "" {
			return fmt.Errorf("TLS_CERT_PATH is required when TLS is enabled")
		}
		if c.TLS.KeyPath == "" {
			return fmt.Errorf("TLS_KEY_PATH is required when TLS is enabled")
		}

		validTLSVersions := map[string]bool{
			"1.2": true,
			"1.3": true,
		}
		if !validTLSVersions[c.TLS.MinVersion] {
			return fmt.Errorf("invalid TLS version '%s', must be one of: 1.2, 1.3", c.TLS.MinVersion)
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", c.Logging.Level)
	}

	validModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server mode '%s', must be one of: debug, release, test", c.Server.Mode)
	}

	if _, err := time.LoadLocation(c.CalCom.AttendeeTimeZone); err != nil {
		return fmt.Errorf("invalid CAL_ATTENDEE_TIMEZONE '%s': %w", c.CalCom.AttendeeTimeZone, err)
	}

	if c.App.ProviderTimeout <= 0 {
		return fmt.Errorf("APP_PROVIDER_TIMEOUT must be greater than 0, got %s", c.App.ProviderTimeout)
	}

	if c.Webhook.RateLimit < 0 {
		return fmt.Errorf("WEBHOOK_RATE_LIMIT must not be negative, got %f", c.Webhook.RateLimit)
	}
	if c.Webhook.RateLimit > 0 && c.Webhook.RateBurst <= 0 {
		return fmt.Errorf("WEBHOOK_RATE_BURST must be greater than 0 when rate limiting is enabled, got %d", c.Webhook.RateBurst)
	}

	return nil
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if the application is running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "prod" || c.App.Environment == "production"
}

// IsDebugEnabled returns true if debug logging is enabled
func (c *Config) IsDebugEnabled() bool {
	return c.Logging.Level == "debug"
}
