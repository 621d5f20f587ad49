package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/FACorreiaa/paragourmet/app/observability/metrics"
	"github.com/FACorreiaa/paragourmet/app/tracer"
	"github.com/FACorreiaa/paragourmet/internal/container"
	"github.com/FACorreiaa/paragourmet/internal/router"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and landing page",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.HTTPPort
		}
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8000", "HTTP port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	providers, err := tracer.InitTracingAndMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to flush telemetry", slog.Any("error", err))
		}
	}()

	appMetrics, err := metrics.New(otel.Meter(tracer.ServiceName))
	if err != nil {
		return err
	}
	tracer.ServeMetrics(ctx, ":"+cfg.Handlers.Prometheus.Port, logger)

	c, err := container.NewContainer(ctx, &cfg, logger, appMetrics)
	if err != nil {
		return err
	}

	timeout := cfg.Server.Timeout
	if timeout <= 0 {
		timeout = router.DefaultRequestTimeout
	}

	serverAddress := ":" + servePort
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router.NewServerHandler(c.RouterConfig(), logger, timeout),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		return err
	}
	logger.Info("HTTP server gracefully stopped")
	return nil
}
