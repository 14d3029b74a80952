package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/perfdeck/perfdeck/internal/adapters/http/api"
	"github.com/perfdeck/perfdeck/internal/adapters/repository"
	app "github.com/perfdeck/perfdeck/internal/app"
	"github.com/perfdeck/perfdeck/internal/config"
	"github.com/perfdeck/perfdeck/internal/domain/charts"
	"github.com/perfdeck/perfdeck/internal/domain/metric"
	"github.com/perfdeck/perfdeck/internal/seedgen"
	"github.com/perfdeck/perfdeck/pkg/logger"
	"github.com/perfdeck/perfdeck/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 10 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	storeMetricsInterval = 10 * time.Second
	devSeedAthletes      = 25
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Pick the measurement source: Postgres when configured, otherwise an
	// in-memory store seeded with generated fixtures for local work.
	var source repository.Source
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewPostgresSource(cfg.DatabaseURL, repository.WithMaxRows(cfg.MaxRows))
		if err != nil {
			os.Stderr.WriteString("failed to connect to database: " + err.Error() + "\n")
			return
		}
		defer func() { _ = pg.Close() }()
		source = pg
		loggerInstance.Info(ctx, "using postgres measurement source")
	} else {
		gen := seedgen.New(seedgen.WithAthletes(devSeedAthletes))
		mem := repository.NewMemorySource(repository.WithSeedRows(gen.Measurements(gen.Roster())))
		source = mem
		loggerInstance.Info(ctx, "using in-memory measurement source", logger.Int("rows", mem.Len()))
		go startStoreMetricsUpdater(ctx, mem)
	}

	directions := metric.NewDirectionRegistry(
		metric.WithDirections(cfg.LowerIsBetterOverrides()),
	)
	chartTable := charts.NewTable()

	// Create the analytics service with configuration options
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithSource(source),
		app.WithDirections(directions),
		app.WithChartTable(chartTable),
		app.WithDefaultPeriod(time.Duration(cfg.DefaultPeriodDays)*24*time.Hour),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, chartTable)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startStoreMetricsUpdater keeps the store row gauge fresh while the
// in-memory source is active.
func startStoreMetricsUpdater(ctx context.Context, mem *repository.MemorySource) {
	ticker := time.NewTicker(storeMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateStoreRows(mem.Len())
		}
	}
}
