package weather

import (
	"math"
	"strconv"
)

// Display names the single element a view shows.
type Display string

const (
	DisplayNone    Display = "none"
	DisplayLoading Display = "loading"
	DisplayError   Display = "error"
	DisplayWeather Display = "weather"
)

// WeatherCard is the formatted form of a WeatherSnapshot.
type WeatherCard struct {
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Temperature int       `json:"temperature"` // rounded degrees Celsius
	Humidity    string    `json:"humidity"`
	Wind        string    `json:"wind"`
	Icon        string    `json:"icon,omitempty"`
	Condition   Condition `json:"condition"`
}

// View is what the presentation layer renders.
type View struct {
	Display Display      `json:"display"`
	Theme   DisplayMode  `json:"theme"`
	Query   string       `json:"query"`
	Error   string       `json:"error,omitempty"`
	Weather *WeatherCard `json:"weather,omitempty"`
	History []string     `json:"history"`
}

// BuildView derives the view from s. At most one of spinner, error banner
// and weather card is selected, by precedence loading > error > weather.
func BuildView(s State) View {
	v := View{
		Display: DisplayNone,
		Theme:   s.Mode,
		Query:   s.Query,
		History: s.History,
	}
	if v.History == nil {
		v.History = []string{}
	}

	switch {
	case s.Loading:
		v.Display = DisplayLoading
	case s.Error != "":
		v.Display = DisplayError
		v.Error = s.Error
	case s.Weather != nil:
		v.Display = DisplayWeather
		v.Weather = newWeatherCard(*s.Weather)
	}
	return v
}

func newWeatherCard(w WeatherSnapshot) *WeatherCard {
	return &WeatherCard{
		Location:    w.LocationName,
		Description: w.Description,
		Temperature: roundHalfUp(w.Temperature),
		Humidity:    formatNumber(w.Humidity) + "%",
		Wind:        formatNumber(w.WindSpeed) + " km/h",
		Icon:        w.Icon,
		Condition:   w.Condition,
	}
}

// roundHalfUp rounds halves toward positive infinity: 15.5 -> 16, -2.5 -> -2.
func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
