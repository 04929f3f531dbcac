package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "openweather", cfg.Provider)
	assert.Equal(t, "https://api.openweathermap.org", cfg.ProviderBaseURL())
	assert.Empty(t, cfg.ProviderAPIKey(), "a missing credential is not an error")
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.ProviderMaxRetries)
	assert.Zero(t, cfg.ProviderBreakerThreshold)
	assert.Equal(t, 5, cfg.HistoryCapacity)
	assert.Equal(t, "weather-lookup.db", cfg.PreferencesPath)
	assert.Zero(t, cfg.RefreshInterval)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WEATHER_PROVIDER", "weatherapi")
	t.Setenv("WEATHERAPI_API_KEY", "wa-key")
	t.Setenv("WEATHERAPI_BASE_URL", "http://localhost:9999")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PROVIDER_MAX_RETRIES", "2")
	t.Setenv("PROVIDER_BREAKER_THRESHOLD", "4")
	t.Setenv("REFRESH_INTERVAL", "10m")
	t.Setenv("PREFERENCES_PATH", ":memory:")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.ProviderBaseURL())
	assert.Equal(t, "wa-key", cfg.ProviderAPIKey())
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.ProviderMaxRetries)
	assert.Equal(t, uint32(4), cfg.ProviderBreakerThreshold)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, ":memory:", cfg.PreferencesPath)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad duration":     {"HTTP_TIMEOUT", "soon"},
		"bad int":          {"PROVIDER_MAX_RETRIES", "many"},
		"negative retries": {"PROVIDER_MAX_RETRIES", "-1"},
		"unknown provider": {"WEATHER_PROVIDER", "accuweather"},
		"bad base url":     {"OPENWEATHER_BASE_URL", "not a url"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
