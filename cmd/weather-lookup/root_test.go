package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T, status int, body string) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	t.Setenv("WEATHER_PROVIDER", "openweather")
	t.Setenv("OPENWEATHER_BASE_URL", ts.URL)
	t.Setenv("OPENWEATHER_API_KEY", "test")
	t.Setenv("PREFERENCES_PATH", filepath.Join(t.TempDir(), "prefs.db"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	setupEnv(t, http.StatusOK, `{"name":"London","main":{"temp":15.4,"humidity":72},
		"weather":[{"main":"Clouds","description":"overcast clouds","icon":"04d"}],"wind":{"speed":12}}`)

	out, err := run(t, "search", "London")
	require.NoError(t, err)
	assert.Contains(t, out, "London")
	assert.Contains(t, out, "temperature: 15°")
	assert.Contains(t, out, "humidity:    72%")
	assert.Contains(t, out, "wind speed:  12 km/h")
}

func TestSearchCommand_NotFound(t *testing.T) {
	setupEnv(t, http.StatusNotFound, `{"cod":"404"}`)

	out, err := run(t, "search", "Nonexistentville")
	require.EqualError(t, err, "City not found")
	assert.Contains(t, out, "error: City not found")
}

func TestSearchCommand_Blank(t *testing.T) {
	setupEnv(t, http.StatusOK, `{}`)

	_, err := run(t, "search", "   ")
	assert.Error(t, err)
}

func TestThemeCommand_TogglePersists(t *testing.T) {
	setupEnv(t, http.StatusOK, `{}`)

	out, err := run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}
