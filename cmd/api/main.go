package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopease/storefront-api/internal/api"
	"github.com/shopease/storefront-api/internal/infrastructure/config"
	mongodb "github.com/shopease/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopease/storefront-api/internal/infrastructure/db/redis"
	"github.com/shopease/storefront-api/pkg/logger"
)

// @title           ShopEase Storefront API
// @version         1.0
// @description     Storefront API with session management, role gated navigation, catalog, cart and order processing.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	ensureIndexes(ctx, db, log)

	e, dispatcher := api.NewRouter(db, rdb, cfg)
	dispatcher.Start(ctx)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureIndexes creates the collection indexes at startup. Index creation is
// idempotent; failures are logged but do not abort startup.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	indexers := map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		"users":      mongodb.NewUserRepository(db),
		"products":   mongodb.NewProductRepository(db),
		"orders":     mongodb.NewOrderRepository(db),
		"reviews":    mongodb.NewReviewRepository(db),
		"promotions": mongodb.NewPromotionRepository(db),
	}
	for name, repo := range indexers {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Error().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
