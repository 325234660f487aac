// cmd/analysis-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cleanseam-engine/internal/analysis"
	estimatewear "cleanseam-engine/internal/analysis/estimate-wear"
	rankcomparison "cleanseam-engine/internal/analysis/rank-comparison"
	scorequality "cleanseam-engine/internal/analysis/score-quality"
	"cleanseam-engine/internal/catalog"
	"cleanseam-engine/internal/common/config"
	"cleanseam-engine/internal/common/database"
	"cleanseam-engine/internal/common/logger"
	"cleanseam-engine/internal/common/observability"
	"cleanseam-engine/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting analysis server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("analysis-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Catalog source ---
	var source catalog.Source
	var pgClient *database.PostgresClient

	switch cfg.Catalog.Source {
	case "postgres":
		err = retryWithBackoff(func() error {
			var err error
			pgClient, err = database.NewPostgres(cfg.Catalog.Postgres)
			if err != nil {
				return err
			}
			return pgClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres unavailable", zap.Error(err))
		}
		defer pgClient.Close()
		source = &catalog.PostgresSource{DB: pgClient.DB}
	default:
		source = &catalog.FileSource{
			BrandsPath:     cfg.Catalog.BrandsPath,
			CategoriesPath: cfg.Catalog.CategoriesPath,
		}
	}

	store, err := catalog.NewStore(ctx, source, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	// --- Optional result cache ---
	var cache *redis.Client
	if cfg.Cache.Enabled {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Cache)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			// The cache is an optimization, not a dependency.
			zapLog.Warn("redis unavailable, running without result cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cache = redisClient.Client
		}
	}

	// --- Analysis pipeline ---
	analyzer := analysis.NewAnalyzer(&analysis.Config{
		Scoring: &scorequality.Config{
			DurabilityWeight:   cfg.Scoring.DurabilityWeight,
			TransparencyWeight: cfg.Scoring.TransparencyWeight,
			FallbackCenter:     cfg.Scoring.FallbackCenter,
			FallbackSlope:      cfg.Scoring.FallbackSlope,
		},
		Wear:     wearConfig(cfg),
		CacheTTL: cfg.Cache.CacheTTL(),
	}, store, cache, log)

	comparer := rankcomparison.NewHandler(&rankcomparison.Config{
		MaxBrands: cfg.Comparison.MaxBrands,
	}, analyzer, log)

	srv := server.New(cfg, store, analyzer, comparer, obs, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// SIGHUP reloads the catalog without restarting the process.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			if err := store.Reload(ctx); err != nil {
				zapLog.Error("catalog reload failed", zap.Error(err))
			} else {
				zapLog.Info("catalog reloaded")
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}

func wearConfig(cfg *config.Config) *estimatewear.Config {
	bands := make([]estimatewear.Band, 0, len(cfg.Wear.Verdicts))
	for _, v := range cfg.Wear.Verdicts {
		bands = append(bands, estimatewear.Band{MinScore: v.MinScore, Label: v.Label})
	}
	return &estimatewear.Config{
		MinMultiplier: cfg.Wear.MinMultiplier,
		MaxMultiplier: cfg.Wear.MaxMultiplier,
		Verdicts:      bands,
	}
}
