package config

import (
	"time"

	"kitchenfab_admin/pkg/utils"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to talk to the admin backend.
type Config struct {
	// BaseURL is the root of the backend API, e.g. "http://localhost:8000/api/v1".
	BaseURL string
	// HTTPTimeout bounds every request round-trip.
	HTTPTimeout time.Duration
	// TokenFile is where the file-backed token store persists the session.
	TokenFile string
	// RefreshCheckInterval is how often the session manager wakes to inspect
	// access-token expiry.
	RefreshCheckInterval time.Duration
	// RefreshLeeway is how long before expiry a refresh is issued.
	RefreshLeeway time.Duration
	// DefaultPageSize is the list page size used when a page does not choose one.
	DefaultPageSize int
}

// Load builds a Config from environment variables, reading a .env file first
// when one is present. Missing variables fall back to development defaults.
func Load() *Config {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		BaseURL:              utils.Getenv("API_BASE_URL", "http://localhost:8000/api/v1"),
		HTTPTimeout:          utils.GetenvDuration("API_HTTP_TIMEOUT", 15*time.Second),
		TokenFile:            utils.Getenv("TOKEN_FILE", ".kitchenfab_session.json"),
		RefreshCheckInterval: utils.GetenvDuration("TOKEN_REFRESH_INTERVAL", 30*time.Second),
		RefreshLeeway:        utils.GetenvDuration("TOKEN_REFRESH_LEEWAY", 2*time.Minute),
		DefaultPageSize:      utils.GetenvInt("DEFAULT_PAGE_SIZE", 10),
	}
}
