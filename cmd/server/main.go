package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-price-service/internal/adapters/primary/http/handlers"
	"rental-price-service/internal/adapters/primary/http/middleware"
	"rental-price-service/internal/adapters/secondary/artifact"
	"rental-price-service/internal/adapters/secondary/cache"
	"rental-price-service/internal/adapters/secondary/inference"
	"rental-price-service/internal/adapters/secondary/kserve"
	"rental-price-service/internal/adapters/secondary/postgres"
	"rental-price-service/internal/adapters/secondary/sqlite"
	"rental-price-service/internal/config"
	output "rental-price-service/internal/core/ports/output"
	"rental-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx := context.Background()

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Model backend. The artifact always supplies the feature schema; the
	// remote backend only replaces the regressor.
	var regressor output.Regressor
	if cfg.Model.Backend == config.BackendRemote {
		if cfg.Kubernetes.Enabled {
			url, err := resolveInferenceURL(ctx, cfg)
			if err != nil {
				log.Fatalf("resolve inference service: %v", err)
			}
			cfg.Inference.URL = url
		}
		regressor = inference.NewClient(&cfg.Inference)
		log.WithField("url", cfg.Inference.URL).Info("remote inference backend configured")
	}

	modelSvc, err := services.LoadModelService(ctx, artifact.NewFileLoader(cfg.Model.ArtifactPath), regressor)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	// Prediction history (optional)
	var history output.PredictionRepository
	var healthCheck func(context.Context) error

	switch cfg.History.Driver {
	case config.HistoryPostgres:
		pool, err := newPool(ctx, cfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		history = postgres.NewPredictionRepository(pool)
		healthCheck = pool.Ping
		log.Info("database connection established")
	case config.HistorySQLite:
		db, err := sqlite.Open(cfg.History.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite history: %v", err)
		}
		defer closeDB(db)

		history = sqlite.NewPredictionRepository(db)
		healthCheck = db.PingContext
		log.WithField("path", cfg.History.SQLitePath).Info("sqlite history enabled")
	default:
		log.Info("prediction history disabled")
	}

	// Prediction cache (optional)
	var predictionCache output.PredictionCache
	var lruCache *cache.LRUCache
	switch cfg.Cache.Backend {
	case config.CacheLRU:
		lruCache = cache.NewLRUCache(cfg.Cache.Size, cfg.Cache.TTL)
		predictionCache = lruCache
		log.WithField("size", cfg.Cache.Size).Info("in-memory prediction cache enabled")
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			log.Warnf("redis cache init failed (continuing without cache): %v", err)
		} else {
			defer rc.Close()
			predictionCache = rc
			log.WithField("addr", cfg.Cache.RedisAddr).Info("redis prediction cache enabled")
		}
	default:
		log.Info("prediction cache disabled")
	}

	predictionSvc := services.NewPredictionService(modelSvc, predictionCache, history, cfg.Model.CurrencySymbol)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(modelSvc, predictionSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging("/healthz"), gin.Recovery())

	api := router.Group("/api/v1/rental")
	h.RegisterRoutes(api)
	h.RegisterDashboard(router)

	router.GET("/healthz", func(c *gin.Context) {
		if healthCheck != nil {
			if err := healthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model_version": modelSvc.Version()})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced shutdown: %v", err)
		return
	}

	if lruCache != nil {
		hits, misses := lruCache.Stats()
		log.WithFields(log.Fields{
			"entries": lruCache.Len(),
			"hits":    hits,
			"misses":  misses,
		}).Info("prediction cache stats")
	}

	log.Info("server stopped")
}

func resolveInferenceURL(ctx context.Context, cfg *config.Config) (string, error) {
	client, err := kserve.NewKServeClient(&cfg.Kubernetes)
	if err != nil {
		return "", err
	}
	return services.ResolveInferenceURL(ctx, client, cfg.Kubernetes.Namespace, cfg.Kubernetes.ServiceName)
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.WithError(err).Warn("close sqlite history")
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.Logger.File != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Logger.File,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAgeDays,
			Compress:   true,
		}))
	}
}
