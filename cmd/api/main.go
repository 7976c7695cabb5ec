package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/orders-api/internal/api"
	"github.com/storefront/orders-api/internal/core/service"
	"github.com/storefront/orders-api/internal/infrastructure/config"
	mongodb "github.com/storefront/orders-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/orders-api/internal/infrastructure/db/redis"
	"github.com/storefront/orders-api/pkg/logger"
)

// @title Orders API
// @version 1.0
// @description REST backend managing users, products, and orders with JWT authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env == "development")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	productRepo := redisdb.NewProductCache(rdb, mongodb.NewProductRepository(db), cfg.Redis.ProductTTL, log)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order index creation failed")
	}

	// --- Services ---
	assembler := service.NewOrderAssembler(productRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, assembler, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)

	if err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Warn().Err(err).Msg("bootstrap admin creation failed")
	}

	e := api.NewRouter(api.Deps{
		Orders:    orderService,
		Users:     userService,
		Auth:      authService,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("orders api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
