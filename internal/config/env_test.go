package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("SHELTER_API_URL", "https://api.shelter.example")
		t.Setenv("SHELTER_NOTIFICATION_WS_URL", "wss://ws.shelter.example")
		t.Setenv("SHELTER_FILE_SERVICE_URL", "https://files.shelter.example")
		t.Setenv("SHELTER_REQUEST_TIMEOUT", "5s")
		t.Setenv("SHELTER_PAGE_SIZE", "25")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "https://api.shelter.example", cfg.APIBaseURL)
		assert.Equal(t, "wss://ws.shelter.example", cfg.NotificationWSURL)
		assert.Equal(t, "https://files.shelter.example", cfg.FileServiceBaseURL)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 25, cfg.PageSize)
	})

	t.Run("unset env leaves defaults", func(t *testing.T) {
		t.Setenv("SHELTER_API_URL", "")
		t.Setenv("SHELTER_REQUEST_TIMEOUT", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://127.0.0.1:5000", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("malformed values are ignored", func(t *testing.T) {
		t.Setenv("SHELTER_REQUEST_TIMEOUT", "soon")
		t.Setenv("SHELTER_PAGE_SIZE", "-3")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 10, cfg.PageSize)
	})
}
