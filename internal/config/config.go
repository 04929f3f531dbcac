package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// AppConfig is read once at startup from the environment.
type AppConfig struct {
	// Provider selects the weather backend.
	Provider string `envconfig:"WEATHER_PROVIDER" default:"openweather" validate:"oneof=openweather weatherapi"`

	// Credentials are not validated; a missing key surfaces as a failed lookup.
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
	WeatherAPIKey     string `envconfig:"WEATHERAPI_API_KEY"`

	OpenWeatherBaseURL string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org" validate:"url"`
	WeatherAPIBaseURL  string `envconfig:"WEATHERAPI_BASE_URL" default:"https://api.weatherapi.com" validate:"url"`

	// Outbound provider calls.
	HTTPTimeout              time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gte=0"`
	ProviderMaxRetries       int           `envconfig:"PROVIDER_MAX_RETRIES" default:"0" validate:"gte=0"`
	ProviderBreakerThreshold uint32        `envconfig:"PROVIDER_BREAKER_THRESHOLD" default:"0"`

	HistoryCapacity int    `envconfig:"HISTORY_CAPACITY" default:"5"`
	PreferencesPath string `envconfig:"PREFERENCES_PATH" default:"weather-lookup.db" validate:"required"`

	// RefreshInterval re-fetches the displayed city periodically (0 = off).
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"0s" validate:"gte=0"`

	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults. A .env
// file in the working directory is applied first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Err(err).Msg("no .env file loaded")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// ProviderBaseURL returns the base URL for the configured provider.
func (c *AppConfig) ProviderBaseURL() string {
	if c.Provider == "weatherapi" {
		return c.WeatherAPIBaseURL
	}
	return c.OpenWeatherBaseURL
}

// ProviderAPIKey returns the credential for the configured provider.
func (c *AppConfig) ProviderAPIKey() string {
	if c.Provider == "weatherapi" {
		return c.WeatherAPIKey
	}
	return c.OpenWeatherAPIKey
}
