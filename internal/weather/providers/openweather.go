package providers

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org"

const openWeatherPath = "/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	client  *resty.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates the provider. An empty apiKey is not
// rejected here; the API answers it with 401, reported as city not found.
func NewOpenWeatherProvider(cfg HTTPClientConfig, apiKey string) *OpenWeatherProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenWeatherBaseURL
	}

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		client:  newRestyClient(cfg),
		circuit: newCircuitBreaker("openweather", cfg.BreakerThreshold),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type openWeatherPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []openWeatherCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, city string) (weather.WeatherSnapshot, error) {
	buildRequest := func(ctx context.Context) *resty.Request {
		// resty percent-encodes query parameters.
		return p.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":     city,
				"appid": p.apiKey,
				"units": "metric",
			})
	}

	body, err := doRequest(ctx, p.circuit, buildRequest, openWeatherPath)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}

	var payload openWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if len(payload.Weather) == 0 {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: empty condition list", errMalformed)
	}

	first := payload.Weather[0]
	return weather.WeatherSnapshot{
		LocationName: payload.Name,
		Temperature:  payload.Main.Temp,
		Humidity:     payload.Main.Humidity,
		WindSpeed:    payload.Wind.Speed,
		Summary:      first.Main,
		Description:  first.Description,
		Icon:         first.Icon,
		Condition:    mapOpenWeatherCondition(first.Main),
		Provider:     p.name,
	}, nil
}

func mapOpenWeatherCondition(main string) weather.Condition {
	switch main {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionCloudy
	case "Rain", "Drizzle":
		return weather.ConditionRain
	case "Snow":
		return weather.ConditionSnow
	case "Thunderstorm", "Squall", "Tornado":
		return weather.ConditionStorm
	case "Mist", "Fog", "Haze", "Smoke", "Dust", "Sand", "Ash":
		return weather.ConditionMist
	default:
		return weather.ConditionUnknown
	}
}
