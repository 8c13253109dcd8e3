package main

import (
	"context"
	"drills/internal/api"
	"drills/internal/api/handler/v1handler"
	"drills/internal/config"
	"drills/internal/drill"
	"drills/pkg/logger"
	"drills/pkg/metrics"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, provider *metrics.Provider) func(ctx context.Context) {
	svc, err := drill.New(provider.Meter(meterName))
	if err != nil {
		logger.Fatal(ctx, "could not create drill service", zap.Error(err))
	}

	server := api.NewServer(api.Deps{
		Deps:    v1handler.Deps{Service: svc},
		Metrics: provider.Handler(),
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the exercises over HTTP with Prometheus metrics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			provider, err := metrics.NewProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create metrics provider", zap.Error(err))
			}
			otel.SetMeterProvider(provider.MeterProvider())

			stopWebserver := setupServer(ctx, cfg, provider)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down metrics provider", zap.Error(err))
			}
		},
	}

	return cmd
}
