package weather

// ThemeKey is the preference key holding the display mode.
const ThemeKey = "theme"

// LoadInitialMode reads the stored display mode. Only the exact marker
// "dark" selects dark mode; a missing key, any other value or a read error
// yields light. The read error is returned for logging only.
func LoadInitialMode(prefs Preferences) (DisplayMode, error) {
	if prefs == nil {
		return DisplayLight, nil
	}
	v, ok, err := prefs.Get(ThemeKey)
	if err != nil {
		return DisplayLight, err
	}
	if ok && v == string(DisplayDark) {
		return DisplayDark, nil
	}
	return DisplayLight, nil
}

// PersistMode writes mode through to the store synchronously.
func PersistMode(prefs Preferences, mode DisplayMode) error {
	if prefs == nil {
		return nil
	}
	return prefs.Set(ThemeKey, string(mode))
}
