package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Remote marketplace API
	API APIConfig

	// Auth cookie / token validation
	Auth AuthConfig

	// CORS configuration
	CORS CORSConfig

	// Dashboard state containers
	Dashboard DashboardConfig

	Log     LogConfig
	Metrics MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// APIConfig points at the marketplace REST API this service fronts
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" env-default:"http://localhost:5000/api"`
	Timeout time.Duration `env:"API_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds the shared secret used to read tokens issued by the auth service
type AuthConfig struct {
	JWTSecret  string `env:"JWT_SECRET"`
	CookieName string `env:"AUTH_COOKIE_NAME" env-default:"token"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" env-separator:"," env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" env-separator:"," env-default:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

// DashboardConfig tunes the per-user dashboard containers
type DashboardConfig struct {
	PageSize        int           `env:"DASHBOARD_PAGE_SIZE" env-default:"10"`
	CatalogPageSize int           `env:"CATALOG_PAGE_SIZE" env-default:"12"`
	SessionTTL      time.Duration `env:"DASHBOARD_SESSION_TTL" env-default:"30m"`
	Timezone        string        `env:"DASHBOARD_TIMEZONE" env-default:"UTC"`
}

// LogConfig selects zap level and encoder
type LogConfig struct {
	Level    string `env:"LOG_LEVEL" env-default:"info"`
	Encoding string `env:"LOG_ENCODING" env-default:"json"`
}

// MetricsConfig toggles the /metrics endpoint
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" env-default:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Dashboard.PageSize <= 0 || c.Dashboard.CatalogPageSize <= 0 {
		return errors.New("DASHBOARD_PAGE_SIZE and CATALOG_PAGE_SIZE must be positive")
	}
	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("DASHBOARD_TIMEZONE: %w", err)
	}

	for _, o := range c.CORS.AllowedOrigins {
		if o == "*" && c.CORS.AllowCredentials {
			log.Println("Warning: CORS allows any origin with credentials; browsers will reject credentialed requests.")
		}
	}

	return nil
}

// Location returns the time zone used for calendar-day comparisons
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// APIBaseURL returns the API base URL without a trailing slash
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}
