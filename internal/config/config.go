// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBPath     string

	// Assistant provider settings. An empty API key is allowed: the
	// assistant then answers from its built-in fallback table only.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	PrayerAPIURL    string
	PrayerLatitude  string
	PrayerLongitude string

	ChatRateLimit int

	Environment string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "lifeboard.db"),
		AIAPIKey:        getEnv("AI_API_KEY", ""),
		AIBaseURL:       getEnv("AI_BASE_URL", ""),
		AIModel:         getEnv("AI_MODEL", "gpt-4o-mini"),
		PrayerAPIURL:    getEnv("PRAYER_API_URL", "https://api.muftyat.kz"),
		PrayerLatitude:  getEnv("PRAYER_LAT", "43.238293"),
		PrayerLongitude: getEnv("PRAYER_LNG", "76.945465"),
		ChatRateLimit:   getEnvAsInt("CHAT_RATE_LIMIT", 20),
		Environment:     env,
	}

	if strings.ToLower(env) == "production" && cfg.AIAPIKey == "" {
		log.Println("Warning: AI_API_KEY is not set; assistant will run in fallback mode")
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
