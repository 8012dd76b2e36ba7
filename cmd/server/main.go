package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/polyglot-quiz/backend/internal/config"
	"github.com/polyglot-quiz/backend/internal/content"
	"github.com/polyglot-quiz/backend/internal/database"
	"github.com/polyglot-quiz/backend/internal/logger"
	"github.com/polyglot-quiz/backend/internal/middleware"
)

const migrateRetryInterval = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store outages at boot are logged, not fatal: requests fail
	// individually until the store comes back.
	store, closeStore := openStore(ctx, cfg, logg)
	defer closeStore()

	contentHandler := content.NewHandler(content.NewService(store), logg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	r := mux.NewRouter()
	metrics.Instrument(r)
	contentHandler.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	var handler http.Handler = r
	if cfg.RateLimit.MaxRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		go limiter.Run(ctx.Done())
		handler = limiter.Middleware(handler)
	}
	handler = middleware.Logging(logg)(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config, logg *zap.Logger) (content.Store, func()) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if client == nil {
			logg.Fatal("mongo client init failed", zap.Error(err))
		}
		if err != nil {
			logg.Error("mongo connection error", zap.Error(err))
		} else {
			logg.Info("mongo connected", zap.String("database", cfg.Mongo.Database))
		}
		return content.NewMongoStore(client.Database(cfg.Mongo.Database)), func() {
			_ = client.Disconnect(context.Background())
		}

	default:
		db, err := database.Connect(cfg.Database)
		if db == nil {
			logg.Fatal("postgres init failed", zap.Error(err))
		}
		if err != nil {
			logg.Error("postgres connection error", zap.Error(err))
		} else {
			logg.Info("postgres connected")
		}
		if cfg.Database.Migrate {
			// Keeps retrying in the background when Postgres is down at boot.
			go func() {
				err := database.MigrateUntilApplied(ctx, db, migrateRetryInterval, func(err error) {
					logg.Warn("migrations failed, retrying", zap.Error(err), zap.Duration("retry_in", migrateRetryInterval))
				})
				if err == nil {
					logg.Info("migrations applied")
				}
			}()
		}
		return content.NewPostgresStore(db), func() { db.Close() }
	}
}
