package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/stock-keeper/internal/cache"
	"github.com/rogerio-castellano/stock-keeper/internal/config"
	"github.com/rogerio-castellano/stock-keeper/internal/db"
	"github.com/rogerio-castellano/stock-keeper/internal/http/handlers"
	mw "github.com/rogerio-castellano/stock-keeper/internal/http/middleware"
	"github.com/rogerio-castellano/stock-keeper/internal/http/router"
	"github.com/rogerio-castellano/stock-keeper/internal/logging"
	"github.com/rogerio-castellano/stock-keeper/internal/repo"
	"github.com/sirupsen/logrus"
)

// @title Stock Keeper API
// @version 1.0
// @description CRUD, import and export of inventory products with per-product stock history.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("could not load configuration: %v", err)
	}
	log := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("could not connect to database")
	}
	defer database.Close()

	if err := db.EnsureSchema(ctx, database); err != nil {
		log.WithError(err).Error("table create error")
	} else {
		log.Info("tables created/verified")
	}

	var products repo.ProductRepository = repo.NewPostgresProductRepository(database, cfg.Database.QueryTimeout)
	history := repo.NewPostgresHistoryRepository(database, cfg.Database.QueryTimeout)

	if cfg.Redis.Enabled() {
		c := cache.NewCache(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.TTL)
		defer c.Close()

		if err := c.Ping(ctx); err != nil {
			log.WithError(err).Warn("redis unreachable, product cache will fall through to the database")
		}
		products = repo.NewCachedProductRepository(products, c, log)
		log.WithField("addr", cfg.Redis.Addr).Info("product cache enabled")
	}

	opts := router.Options{CORSOrigin: cfg.CORSOrigin, TrustProxy: cfg.TrustProxy, Logger: log}
	if cfg.RateLimit.Enabled() {
		limiter := mw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Run(ctx)
		opts.RateLimiter = limiter
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(handlers.NewServer(products, history, log), opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("server running: http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
