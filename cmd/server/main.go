package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kidsync/childcare-api/internal/api"
	"github.com/kidsync/childcare-api/internal/core/service"
	"github.com/kidsync/childcare-api/internal/infrastructure/config"
	mongodb "github.com/kidsync/childcare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kidsync/childcare-api/internal/infrastructure/db/redis"
	"github.com/kidsync/childcare-api/internal/infrastructure/queue"
	"github.com/kidsync/childcare-api/pkg/logger"
)

// @title        Childcare Coordination API
// @version      1.0
// @description  Accounts, authentication and role-routed dashboards for the childcare platform.
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(rootCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	}).With().Str("service", "childcare-api").Logger()

	// ---- MongoDB ----
	client, db, err := mongodb.Connect(rootCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	accountRepo := mongodb.NewAccountRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	if err := accountRepo.EnsureIndexes(rootCtx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := activityRepo.EnsureIndexes(rootCtx); err != nil {
		log.Fatal().Err(err).Msg("activity indexes failed")
	}

	// ---- Redis ----
	rdb, err := redisdb.Connect(rootCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// ---- Services ----
	denylist := redisdb.NewTokenDenylist(rdb)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	activityService := service.NewActivityService(activityRepo, log)

	dispatcher := queue.NewDispatcher(cfg.Workers, activityService, log)
	dispatcher.Start(rootCtx)

	accountService := service.NewAccountService(accountRepo, tokens, dispatcher, cfg.BcryptCost, log)

	// ---- Router ----
	e := api.NewRouter(api.RouterDeps{
		Accounts: accountService,
		Activity: activityService,
		Recorder: dispatcher,
		Verifier: tokens,
		Denylist: denylist,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
