package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/brackets/internal/application/service"
	"github.com/ozzus/brackets/internal/config"
	"github.com/ozzus/brackets/internal/infrastructures/brackets"
	"github.com/ozzus/brackets/internal/infrastructures/brackets/http/client"
	"github.com/ozzus/brackets/internal/infrastructures/tracing"
	"github.com/ozzus/brackets/internal/transport/http/handlers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.InitTracer(cfg.Jaeger.ServiceName, cfg.Jaeger.Collector)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info("brackets gateway starting",
		zap.String("http_addr", addr),
		zap.String("api_mode", cfg.API.Mode),
		zap.String("base_url", cfg.API.BaseURL()),
	)

	httpClient := client.NewHTTPClient(cfg.API.RequestTimeout, cfg.API.ResourceTimeout)
	source := brackets.NewSource(client.NewClient(log, cfg.API, httpClient))
	stats := service.NewStatsService(log, source)
	handler := handlers.NewRouter(log, handlers.NewStatsHandler(log, stats, cfg.API))

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, log, server, cfg.HTTP.ShutdownTimeout, shutdownTracer); err != nil {
		log.Error("http server stopped", zap.Error(err))
	}
}

// serve runs server until ctx is done or the listener fails. The tracer is
// flushed on either path.
func serve(ctx context.Context, log *zap.Logger, server *http.Server, shutdownTimeout time.Duration, shutdownTracer func(context.Context) error) error {
	defer func() {
		tracerCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(tracerCtx); err != nil {
			log.Error("tracer shutdown error", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
