package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/i474232898/weather-lookup/internal/metrics"
)

// Controller owns the lookup state and orchestrates the fetch lifecycle
// against a single provider, the search history and the preference store.
type Controller struct {
	provider Provider
	history  History
	prefs    Preferences
	log      zerolog.Logger

	mu    sync.RWMutex
	state State
}

// NewController creates a Controller and reads the initial display mode.
func NewController(provider Provider, history History, prefs Preferences, log zerolog.Logger) *Controller {
	mode, err := LoadInitialMode(prefs)
	if err != nil {
		log.Warn().Err(err).Msg("could not read display mode; using light")
	}

	return &Controller{
		provider: provider,
		history:  history,
		prefs:    prefs,
		log:      log,
		state:    State{Mode: mode},
	}
}

// SetQuery records the text currently typed by the user without fetching.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.state.Query = text
	c.mu.Unlock()
}

// SubmitQuery trims raw and fetches it. Empty input is ignored entirely and
// SubmitQuery reports false.
func (c *Controller) SubmitQuery(ctx context.Context, raw string) bool {
	city := strings.TrimSpace(raw)
	if city == "" {
		return false
	}

	c.SetQuery(city)
	c.FetchWeather(ctx, city)
	return true
}

// ReQuery fetches city as given. Used for history entries, whose names are
// already clean.
func (c *Controller) ReQuery(ctx context.Context, city string) {
	c.FetchWeather(ctx, city)
}

// Refresh re-fetches the city currently on display, by the name the
// provider returned for it. It reports false when nothing is displayed.
func (c *Controller) Refresh(ctx context.Context) bool {
	c.mu.RLock()
	current := c.state.Weather
	c.mu.RUnlock()

	if current == nil {
		return false
	}
	c.FetchWeather(ctx, current.LocationName)
	return true
}

// FetchWeather performs exactly one provider call for city and folds the
// outcome into the state. Overlapping calls are not serialized: whichever
// resolves last determines the final state.
func (c *Controller) FetchWeather(ctx context.Context, city string) {
	log := c.log.With().
		Str("request_id", uuid.NewString()).
		Str("city", city).
		Logger()

	c.mu.Lock()
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	log.Debug().Str("provider", c.provider.Name()).Msg("fetching weather")

	start := time.Now()
	snapshot, err := c.callProvider(ctx, city)
	elapsed := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Loading is cleared last, whatever happened above.
	defer func() { c.state.Loading = false }()

	switch {
	case err == nil:
		c.state.Weather = &snapshot
		if c.history.Record(city) {
			log.Debug().Msg("added to search history")
		}
		metrics.ObserveFetch(c.provider.Name(), metrics.OutcomeSuccess, elapsed)
		log.Info().Str("location", snapshot.LocationName).Dur("elapsed", elapsed).Msg("weather fetched")

	case errors.Is(err, ErrCityNotFound):
		c.state.Error = MsgCityNotFound
		c.state.Weather = nil
		metrics.ObserveFetch(c.provider.Name(), metrics.OutcomeNotFound, elapsed)
		log.Info().Err(err).Msg("city not found")

	default:
		c.state.Error = failureMessage(err)
		c.state.Weather = nil
		metrics.ObserveFetch(c.provider.Name(), metrics.OutcomeError, elapsed)
		log.Error().Err(err).Msg("weather fetch failed")
	}
}

// callProvider converts a provider panic into an ordinary failure so it is
// reported like any other fetch error.
func (c *Controller) callProvider(ctx context.Context, city string) (snapshot WeatherSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return c.provider.Fetch(ctx, city)
}

func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgFetchFailed
}

// ToggleDisplayMode flips the display mode and writes it through to the
// preference store. A failed write is logged and otherwise ignored.
func (c *Controller) ToggleDisplayMode() DisplayMode {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Mode = c.state.Mode.Toggle()
	if err := PersistMode(c.prefs, c.state.Mode); err != nil {
		metrics.PreferenceWriteFailed()
		c.log.Warn().Err(err).Str("mode", string(c.state.Mode)).Msg("could not persist display mode")
	}
	return c.state.Mode
}

// Mode returns the current display mode.
func (c *Controller) Mode() DisplayMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Mode
}

// Snapshot returns a consistent copy of the state.
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	if c.state.Weather != nil {
		w := *c.state.Weather
		s.Weather = &w
	}
	s.History = c.history.Entries()
	return s
}
