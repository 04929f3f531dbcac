package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logger"
	"github.com/i474232898/weather-lookup/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var svcLog zerolog.Logger
			a, err := newApp(func(cfg *config.AppConfig) zerolog.Logger {
				level := cfg.LogLevel
				if debug {
					level = "debug"
				}
				svcLog = logger.New(serviceName, level)
				return svcLog
			})
			if err != nil {
				return err
			}
			defer a.close()

			// Periodic refresh of the displayed city, when configured.
			sched := scheduler.New(a.ctrl, a.cfg.RefreshInterval, a.cfg.HTTPTimeout, svcLog)
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			server := httpapi.NewApp(a.ctrl)

			go func() {
				svcLog.Info().Str("port", a.cfg.Port).Str("provider", a.cfg.Provider).Msg("listening")
				if err := server.Listen(":" + a.cfg.Port); err != nil {
					svcLog.Error().Err(err).Msg("fiber server stopped")
				}
			}()

			// Wait for termination signal
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				svcLog.Error().Err(err).Msg("error during shutdown")
			}
			return nil
		},
	}
}
