package main

import (
	"context"
	"log"

	"storefront-affiliates/internal/bootstrap"
	"storefront-affiliates/internal/config"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := observability.NewLoggerAtLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Printf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	ctx := context.Background()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Error(ctx, "shutdown failed", err)
	}
}
