package weather

import (
	"context"
	"errors"
)

const (
	// MsgCityNotFound is shown for every non-success provider status.
	MsgCityNotFound = "City not found"
	// MsgFetchFailed is the fallback when a failure carries no description.
	MsgFetchFailed = "Failed to fetch weather data"
)

// ErrCityNotFound is returned by providers for any non-2xx response,
// regardless of the actual cause.
var ErrCityNotFound = errors.New(MsgCityNotFound)

// Provider abstracts a current-conditions source (e.g. OpenWeatherMap, WeatherAPI).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, city string) (WeatherSnapshot, error)
}

// History is the bounded most-recent-first list of searched cities.
type History interface {
	// Record inserts city at the head unless already present. It reports
	// whether the history changed.
	Record(city string) bool
	Entries() []string
}

// Preferences is a durable string key-value store.
type Preferences interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}
