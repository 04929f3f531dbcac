package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// WeatherSnapshot is the current-conditions reading for one successful lookup.
// It is replaced wholesale on every successful fetch.
type WeatherSnapshot struct {
	LocationName string  `json:"locationName"` // canonical name returned by the provider
	Temperature  float64 `json:"temperatureC"`
	Humidity     float64 `json:"humidityPercent"`
	WindSpeed    float64 `json:"windSpeed"` // provider units

	// First entry of the provider's condition list.
	Summary     string `json:"conditionSummary"`
	Description string `json:"conditionDescription"`
	Icon        string `json:"icon,omitempty"`

	Condition Condition `json:"condition"`
	Provider  string    `json:"provider"`
}

// DisplayMode is the light/dark presentation preference.
type DisplayMode string

const (
	DisplayLight DisplayMode = "light"
	DisplayDark  DisplayMode = "dark"
)

// Toggle returns the opposite mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayDark {
		return DisplayLight
	}
	return DisplayDark
}

// State is the aggregate owned by the Controller. Copies handed out by
// Controller.Snapshot never share memory with the live state.
type State struct {
	Query   string           `json:"query"`
	Loading bool             `json:"loading"`
	Error   string           `json:"error,omitempty"`
	Weather *WeatherSnapshot `json:"weather,omitempty"`
	Mode    DisplayMode      `json:"mode"`
	History []string         `json:"history"`
}
