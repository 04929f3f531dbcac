package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultWeatherAPIBaseURL is the WeatherAPI.com API root.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com"

const weatherAPIPath = "/v1/current.json"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	client  *resty.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(cfg HTTPClientConfig, apiKey string) *WeatherAPIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultWeatherAPIBaseURL
	}

	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		client:  newRestyClient(cfg),
		circuit: newCircuitBreaker("weatherapi", cfg.BreakerThreshold),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPIPayload struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current *struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, city string) (weather.WeatherSnapshot, error) {
	buildRequest := func(ctx context.Context) *resty.Request {
		// WeatherAPI reports metric and imperial side by side; no units switch.
		return p.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"key": p.apiKey,
				"q":   city,
			})
	}

	body, err := doRequest(ctx, p.circuit, buildRequest, weatherAPIPath)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}

	var payload weatherAPIPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if payload.Current == nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: missing current conditions", errMalformed)
	}

	text := payload.Current.Condition.Text
	return weather.WeatherSnapshot{
		LocationName: payload.Location.Name,
		Temperature:  payload.Current.TempC,
		Humidity:     payload.Current.Humidity,
		WindSpeed:    payload.Current.WindKph,
		Summary:      text,
		Description:  strings.ToLower(text),
		Icon:         payload.Current.Condition.Icon,
		Condition:    mapWeatherAPICondition(text),
		Provider:     p.name,
	}, nil
}

func mapWeatherAPICondition(text string) weather.Condition {
	t := strings.ToLower(text)
	switch {
	case t == "":
		return weather.ConditionUnknown
	case common.HasAny(t, "thunder", "storm"):
		return weather.ConditionStorm
	case common.HasAny(t, "snow", "sleet", "blizzard", "ice pellets"):
		return weather.ConditionSnow
	case common.HasAny(t, "rain", "shower", "drizzle"):
		return weather.ConditionRain
	case common.HasAny(t, "mist", "fog", "haze"):
		return weather.ConditionMist
	case common.HasAny(t, "cloud", "overcast"):
		return weather.ConditionCloudy
	case common.HasAny(t, "sunny", "clear"):
		return weather.ConditionClear
	default:
		return weather.ConditionUnknown
	}
}
