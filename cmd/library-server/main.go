// Command library-server runs the library catalog: the JSON API, the checkout pages and /metrics.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-books-go/library/app"
	"github.com/AntonStoeckl/library-books-go/library/shell/config"
	"github.com/AntonStoeckl/library-books-go/library/shell/observability"
	"github.com/AntonStoeckl/library-books-go/library/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config failed", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("library server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	users, err := cfg.ParsedUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		logger.Warn("no users configured, every protected route will answer 401")
	}

	tracerProvider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)
	defer func() { _ = tracerProvider.Shutdown(context.Background()) }()

	metrics := observability.NewPrometheusCollector()
	tracing := observability.NewTracingCollector(tracerProvider.Tracer(cfg.TracerName))
	traceLogger := observability.NewTraceLogger(logger)

	store, closeStore, err := openEventStore(ctx, cfg, logger, metrics, tracing)
	if err != nil {
		return err
	}
	defer closeStore()

	handlers, err := app.BuildHandlers(store, app.Observability{
		Metrics:          metrics,
		Tracing:          tracing,
		ContextualLogger: traceLogger,
	})
	if err != nil {
		return err
	}

	server, err := web.NewServer(
		handlers,
		web.NewAuthenticator(users),
		web.WithMetrics(metrics),
		web.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("library server listening", "addr", cfg.HTTPAddr, "engine", cfg.Engine)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down library server", "timeout", cfg.ShutdownTimeout.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
