// File: internal/services/prayer/config.go
package prayer

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL   string
	Latitude  string
	Longitude string

	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Year payloads are immutable once published; a day-long TTL keeps the
	// upstream call count at roughly one per day.
	CacheTTL  time.Duration
	CacheSize int
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PRAYER_API_URL is required")
	}
	if c.Latitude == "" || c.Longitude == "" {
		return fmt.Errorf("prayer location coordinates are required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive")
	}
	return nil
}

// DefaultConfig targets the muftyat.kz API for Almaty, the same source and
// Hanafi calculation azan.kz uses.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://api.muftyat.kz",
		Latitude:   "43.238293",
		Longitude:  "76.945465",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
		CacheTTL:   24 * time.Hour,
		CacheSize:  4,
	}
}
