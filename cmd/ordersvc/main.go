package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenloop/waste-mgmt/internal/api"
	mongodb "github.com/greenloop/waste-mgmt/internal/infrastructure/db/mongo"
	redisdb "github.com/greenloop/waste-mgmt/internal/infrastructure/db/redis"
	"github.com/greenloop/waste-mgmt/internal/pkg/config"
	"github.com/greenloop/waste-mgmt/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

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

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// The verdict cache is an optimisation; the service still runs
	// without Redis, resolving every request against the auth service.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, identity verdict cache disabled")
		rdb = nil
	} else {
		defer func() {
			_ = rdb.Close()
		}()
	}

	e := api.NewOrderRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("order service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}
}
