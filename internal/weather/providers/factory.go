package providers

import (
	"fmt"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Provider kinds accepted by New.
const (
	KindOpenWeather = "openweather"
	KindWeatherAPI  = "weatherapi"
)

// New builds the provider named by kind.
func New(kind string, cfg HTTPClientConfig, apiKey string) (weather.Provider, error) {
	switch kind {
	case KindOpenWeather, "":
		return NewOpenWeatherProvider(cfg, apiKey), nil
	case KindWeatherAPI:
		return NewWeatherAPIProvider(cfg, apiKey), nil
	default:
		return nil, fmt.Errorf("unknown weather provider %q", kind)
	}
}
