package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/codec"
	"github.com/kailas-cloud/skysearch/internal/config"
	"github.com/kailas-cloud/skysearch/internal/db"
	"github.com/kailas-cloud/skysearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/skysearch/internal/db/redis"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	logpkg "github.com/kailas-cloud/skysearch/internal/logger"
	"github.com/kailas-cloud/skysearch/internal/metrics"
	"github.com/kailas-cloud/skysearch/internal/suggest"
	"github.com/kailas-cloud/skysearch/internal/transport/catalog"
	chiTransport "github.com/kailas-cloud/skysearch/internal/transport/chi"
	autocompleteuc "github.com/kailas-cloud/skysearch/internal/usecase/autocomplete"
	healthuc "github.com/kailas-cloud/skysearch/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/skysearch/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/skysearch/internal/usecase/query"
	"github.com/kailas-cloud/skysearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting skysearch API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("catalog_url", cfg.Catalog.BaseURL),
	)

	store, err := newStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	filters := filter.NewRegistry(filter.Defaults()...)

	catalogClient, err := catalog.NewClient(catalog.Config{
		BaseURL: cfg.Catalog.BaseURL,
		Timeout: time.Duration(cfg.Catalog.TimeoutSec) * time.Second,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("Failed to create catalog client", zap.Error(err))
	}

	providers, err := suggest.NewDefaultRegistry(suggest.Deps{
		Equipment: catalogClient.Equipment(),
		Users:     catalogClient.Users(),
		Humanizer: suggest.NewHumanizer(cfg.Humanizer.Overrides),
		Remote: suggest.RemoteOptions{
			Limit:         cfg.Autocomplete.ResultLimit,
			CacheCapacity: cfg.Autocomplete.CacheCapacity,
			CacheTotal:    metrics.SuggestionCacheTotal,
		},
	})
	if err != nil {
		logger.Fatal("Failed to register suggestion providers", zap.Error(err))
	}
	logger.Info("Suggestion providers registered",
		zap.Int("providers", providers.Len()),
		zap.Duration("provider_timeout", cfg.Autocomplete.ProviderTimeout()),
	)

	searchCodec, err := codec.New(filters, codec.StaticMode(false))
	if err != nil {
		logger.Fatal("Failed to create search codec", zap.Error(err))
	}
	defer searchCodec.Close()

	// Create use case services
	prefSvc, err := preferenceuc.New(store, cfg.Preferences.TTL(), cfg.Preferences.SessionCapacity)
	if err != nil {
		logger.Fatal("Failed to create preference service", zap.Error(err))
	}
	querySvc := queryuc.New(searchCodec, prefSvc)
	autocompleteSvc := autocompleteuc.New(providers, filters, cfg.Autocomplete.ProviderTimeout())
	healthSvc := healthuc.New(store, catalogClient)

	// Create chi server
	server := chiTransport.NewServer(querySvc, autocompleteSvc, prefSvc, filters, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.ClientIDMiddleware(cfg.Preferences.TTL()))
	r.Use(metrics.Middleware())
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "not_found",
			"message": "route not found",
		})
	})
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore picks the preference store driver. rueidis serves both Redis and Valkey.
func newStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case "valkey", "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line: one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
