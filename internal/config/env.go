package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables take precedence over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv("SHELTER_API_URL", cfg.APIBaseURL)
	cfg.NotificationWSURL = getEnv("SHELTER_NOTIFICATION_WS_URL", cfg.NotificationWSURL)
	cfg.FileServiceBaseURL = getEnv("SHELTER_FILE_SERVICE_URL", cfg.FileServiceBaseURL)

	if v := os.Getenv("SHELTER_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SHELTER_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
