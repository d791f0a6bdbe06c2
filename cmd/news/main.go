package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alsftd-research/datasync/internal/cache"
	"github.com/alsftd-research/datasync/internal/config"
	"github.com/alsftd-research/datasync/internal/database"
	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/internal/repository"
	"github.com/alsftd-research/datasync/internal/service"
	"github.com/alsftd-research/datasync/pkg/external"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(&cfg.Logging)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, canceling run...")
		cancel()
	}()

	db, err := database.NewConnection(ctx, &cfg.Database, logger)
	if err != nil {
		logger.WithField("error", err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	var datasetCache domain.DatasetCache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewDatasetCache(&cfg.Cache, logger)
		if err != nil {
			logger.WithField("error", err).Fatal("Failed to connect to cache")
		}
		defer redisCache.Close()
		datasetCache = redisCache
	}

	checkpoints := repository.NewCheckpointRepository(db.Pool, logger)

	dictionary := service.NewGeneDictionary(
		external.NewALSoDClient(&cfg.GeneSource, logger),
		repository.NewGeneRepository(db.Pool, logger),
		checkpoints,
		cfg.GeneSource.StalenessAge,
		logger,
	)

	pipeline := service.NewNewsPipeline(
		external.NewFeedClient(&cfg.News, logger),
		dictionary,
		repository.NewNewsRepository(db.Pool, logger),
		checkpoints,
		datasetCache,
		service.NewNewsDeduplicator(&cfg.News),
		cfg,
		logger,
	)

	if _, err := pipeline.Run(ctx); err != nil {
		logger.WithField("error", err).Fatal("News run failed")
	}
}
