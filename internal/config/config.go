package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	ServerPort     int    `env:"PORT" envDefault:"8080"`
	MongoURI       string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string `env:"MONGO_DATABASE" envDefault:"coffeehouse"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"devsecret"`
	FrontendOrigin string `env:"URL_FRONT" envDefault:"http://localhost:3000"`
	Timezone       string `env:"TIMEZONE" envDefault:"Europe/Paris"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	Session   Session   `envPrefix:"SESSION_"`
	RateLimit RateLimit `envPrefix:"RATELIMIT_"`
}

// Session holds the session cookie parameters.
type Session struct {
	CookieName string        `env:"COOKIE_NAME" envDefault:"sessionId"`
	TTL        time.Duration `env:"TTL" envDefault:"24h"`
	SameSite   string        `env:"SAMESITE" envDefault:"none"`
	Secure     bool          `env:"SECURE" envDefault:"true"`
	HTTPOnly   bool          `env:"HTTPONLY" envDefault:"true"`
}

// RateLimit holds the request throttling parameters.
type RateLimit struct {
	Requests int           `env:"REQUESTS" envDefault:"250"`
	Window   time.Duration `env:"WINDOW" envDefault:"15m"`
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Location resolves the configured timezone used to normalize timestamps.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SameSiteMode maps the configured sameSite string to its http constant.
func (s Session) SameSiteMode() http.SameSite {
	switch s.SameSite {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}
