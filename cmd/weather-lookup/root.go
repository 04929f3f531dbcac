package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logger"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

const serviceName = "weather-lookup"

var debug bool

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Look up current weather by city name",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log.Logger = logger.NewConsole(serviceName, level.String())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newThemeCmd())

	return rootCmd
}

// app bundles what every command needs; close releases the preference store.
type app struct {
	cfg   *config.AppConfig
	ctrl  *weather.Controller
	prefs *store.SQLitePreferences
}

func (a *app) close() {
	if err := a.prefs.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing preference store")
	}
}

// newApp loads configuration and wires the controller. newLogger picks the
// logger once the configuration is known.
func newApp(newLogger func(cfg *config.AppConfig) zerolog.Logger) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := providers.New(cfg.Provider, providers.HTTPClientConfig{
		BaseURL:          cfg.ProviderBaseURL(),
		Timeout:          cfg.HTTPTimeout,
		MaxRetries:       cfg.ProviderMaxRetries,
		BreakerThreshold: cfg.ProviderBreakerThreshold,
	}, cfg.ProviderAPIKey())
	if err != nil {
		return nil, err
	}

	prefs, err := store.OpenPreferences(cfg.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	history := store.NewMemoryHistory(cfg.HistoryCapacity)
	ctrl := weather.NewController(provider, history, prefs, newLogger(cfg))

	return &app{cfg: cfg, ctrl: ctrl, prefs: prefs}, nil
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <city>",
		Short: "Fetch current weather for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cliLogger)
			if err != nil {
				return err
			}
			defer a.close()

			if !a.ctrl.SubmitQuery(cmd.Context(), strings.Join(args, " ")) {
				return fmt.Errorf("city name is empty")
			}

			view := weather.BuildView(a.ctrl.Snapshot())
			printView(cmd.OutOrStdout(), view)
			if view.Display == weather.DisplayError {
				return fmt.Errorf("%s", view.Error)
			}
			return nil
		},
	}
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored display mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cliLogger)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), a.ctrl.Mode())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark and store the choice",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cliLogger)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintln(cmd.OutOrStdout(), a.ctrl.ToggleDisplayMode())
			return nil
		},
	})
	return cmd
}

func cliLogger(*config.AppConfig) zerolog.Logger {
	return log.Logger
}

func printView(w io.Writer, v weather.View) {
	switch v.Display {
	case weather.DisplayError:
		fmt.Fprintf(w, "error: %s\n", v.Error)
	case weather.DisplayWeather:
		fmt.Fprintf(w, "%s\n", v.Weather.Location)
		fmt.Fprintf(w, "  %s\n", v.Weather.Description)
		fmt.Fprintf(w, "  temperature: %d°\n", v.Weather.Temperature)
		fmt.Fprintf(w, "  humidity:    %s\n", v.Weather.Humidity)
		fmt.Fprintf(w, "  wind speed:  %s\n", v.Weather.Wind)
	}
}
