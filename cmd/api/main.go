// @title Lead Scoring API
// @version 1.0
// @description Scores uploaded leads against product offers with keyword rules and an AI intent classifier.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadscore_backend/internal/adapters"
	"leadscore_backend/internal/adapters/storage"
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/http/router"
	"leadscore_backend/internal/leads"
	leadsservice "leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/offers"
	"leadscore_backend/internal/scoring"
	"leadscore_backend/internal/scoring/intent"
	"leadscore_backend/internal/scoring/rules"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/db"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/metrics"
	"leadscore_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// ensureBucket wraps the retry logic for verifying a MinIO bucket exists.
func ensureBucket(ctx context.Context, log *logger.Logger, store storage.ObjectStore, name, bucket string) {
	if err := withRetry(ctx, log, "ensure "+name+" bucket", 5, 2*time.Second, func() error {
		return store.EnsureBucket(ctx, bucket)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	val := validator.New()
	metricsManager := metrics.New()

	// Upload archive is optional; imports work without it.
	var archiver leadsservice.Archiver
	if cfg.IsMinIOEnabled() {
		store, err := storage.NewMinIOStore(cfg)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		ensureBucket(ctx, log, store, "lead-uploads", cfg.GetMinioBucketLeadUploads())
		archiver = adapters.NewLeadUploadArchiver(store, cfg.GetMinioBucketLeadUploads())
		log.Info("storage service initialized", "leadUploadsBucket", cfg.GetMinioBucketLeadUploads())
	} else {
		log.Warn("MINIO_ENDPOINT not configured; lead uploads will not be archived")
	}

	scorer, err := newScorer(cfg, log)
	if err != nil {
		log.Error("failed to load scoring vocabulary", "error", err)
		panic("failed to load scoring vocabulary: " + err.Error())
	}

	classifier, err := intent.NewFromConfig(ctx, cfg, metricsManager, log)
	if err != nil {
		log.Error("failed to initialize intent classifier", "error", err)
		panic("failed to initialize intent classifier: " + err.Error())
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	offersModule := offers.NewModule(pool, val)
	leadsModule := leads.NewModule(pool, cfg, archiver, metricsManager, log)

	// Anti-corruption layer: scoring reads offers and leads through its own ports.
	scoringModule := scoring.NewModule(
		pool,
		adapters.NewScoringOfferReader(offersModule.Repository()),
		adapters.NewScoringLeadReader(leadsModule.Repository()),
		scorer,
		classifier,
		metricsManager,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Health:  db.NewPoolAdapter(pool),
		Metrics: metricsManager,
		Modules: []apphttp.Module{
			offersModule,
			leadsModule,
			scoringModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newScorer(cfg config.ScoringConfig, log *logger.Logger) (*rules.Scorer, error) {
	path := cfg.GetVocabularyFile()
	if path == "" {
		return rules.Default(), nil
	}
	vocab, err := rules.LoadVocabulary(path)
	if err != nil {
		return nil, err
	}
	log.Info("scoring vocabulary loaded", "file", path)
	return rules.New(vocab), nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
