package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"

	"ainadeul/internal/platform/config"
	"ainadeul/internal/platform/logger"
	"ainadeul/internal/platform/metrics"
	"ainadeul/internal/platform/tracer"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	envErr := config.LoadDotEnv(config.EnvFile())
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)
	if envErr != nil {
		log.Warn("ignoring env file", "error", envErr)
	}

	log.Info("initializing ainadeul",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"database", cfg.Database.URL != "",
		"redis", cfg.Redis.URL != "",
		"kafka", cfg.Kafka.Brokers != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracer.Setup(ctx, tracer.Config{
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.OTLPEndpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
		ServiceName: "ainadeul",
		Environment: cfg.Environment,
	}, log)
	if err != nil {
		log.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	in, err := connect(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect infrastructure", "error", err)
		os.Exit(1)
	}
	defer in.Close(log)

	m := metrics.New()
	in.registerCollectors(prometheus.DefaultRegisterer)

	a, err := wire(cfg, in, m, prometheus.DefaultRegisterer, log)
	if err != nil {
		log.Error("failed to wire services", "error", err)
		os.Exit(1)
	}
	if a.seeder != nil {
		if err := a.seeder.SeedAll(ctx); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(a, prometheus.DefaultGatherer, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return
	}

	log.Info("server stopped")
}
