package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"p2p-exchange/config"
	httpHandler "p2p-exchange/internal/adapter/http/handler"
	memStorage "p2p-exchange/internal/adapter/storage/memory"
	pgStorage "p2p-exchange/internal/adapter/storage/postgres"
	redisStorage "p2p-exchange/internal/adapter/storage/redis"
	"p2p-exchange/internal/core/ports"
	"p2p-exchange/internal/service"
	"p2p-exchange/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting P2P Exchange")

	ctx := context.Background()

	startingBalance, err := decimal.NewFromString(cfg.Seed.StartingBalance)
	if err != nil || startingBalance.IsNegative() {
		log.Fatal().Str("value", cfg.Seed.StartingBalance).Msg("Invalid seed.starting_balance")
	}

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Optional Redis: rate limiting, notices, health
	var (
		rateLimitStore *redisStorage.RateLimitStore
		notifier       ports.Notifier = service.NewLogNotifier(log)
		healthCheckers []ports.HealthChecker
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		notifier = redisStorage.NewNotifier(rdb, log)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Storage backend
	var (
		accountRepo ports.AccountRepository
		offerRepo   ports.OfferRepository
		dealRepo    ports.DealRepository
		transactor  ports.DBTransactor
	)
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		accountRepo = pgStorage.NewAccountRepo(pool)
		offerRepo = pgStorage.NewOfferRepo(pool)
		dealRepo = pgStorage.NewDealRepo(pool)
		transactor = pgStorage.NewTransactor(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

	case "memory":
		accounts := memStorage.NewAccountRepository()
		offers := memStorage.NewOfferRepository()
		deals := memStorage.NewDealRepository()
		accountRepo, offerRepo, dealRepo = accounts, offers, deals
		transactor = memStorage.NewTransactor()

		if cfg.Seed.Demo {
			if err := memStorage.Seed(ctx, accounts, offers, hashSvc); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed demo data")
			}
			log.Info().Msg("Demo data seeded")
		}

	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// Business services
	locks := service.NewKeyedLock()
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc, startingBalance)
	accountSvc := service.NewAccountService(accountRepo, transactor, notifier, locks, log)
	offerSvc := service.NewOfferService(offerRepo, accountRepo, notifier, log)
	dealSvc := service.NewDealService(dealRepo, offerRepo, accountRepo, transactor, notifier, locks, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccountSvc:     accountSvc,
		OfferSvc:       offerSvc,
		DealSvc:        dealSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
