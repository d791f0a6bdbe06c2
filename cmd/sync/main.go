package main

import (
	"context"
	"flag"
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
	force := flag.Bool("force", false, "refresh the gene dictionary even if its checkpoint is fresh")
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

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

	// Apply pending migrations before touching the schema
	migrator, err := database.NewMigrationRunner(configManager.GetDatabaseURL(), cfg.Database.MigrationsPath, logger)
	if err != nil {
		logger.WithField("error", err).Fatal("Failed to create migration runner")
	}
	if err := migrator.Up(); err != nil {
		logger.WithField("error", err).Fatal("Failed to apply migrations")
	}
	migrator.Close()
	if *migrateOnly {
		return
	}

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

	classifier, err := service.NewConditionClassifier(&cfg.Classifier, logger)
	if err != nil {
		logger.WithField("error", err).Fatal("Failed to build condition classifier")
	}

	var enricher domain.CriteriaEnricher
	if cfg.Enrichment.Enabled {
		enricher = external.NewEnrichmentClient(&cfg.Enrichment, logger)
	}

	engine := service.NewSyncEngine(
		external.NewRegistryClient(&cfg.Registry, logger),
		classifier,
		service.NewNormalizer(logger),
		dictionary,
		enricher,
		repository.NewTrialRepository(db.Pool, logger),
		checkpoints,
		datasetCache,
		cfg,
		logger,
	)

	if _, err := engine.Run(ctx, *force || cfg.Sync.ForceRefresh); err != nil {
		logger.WithField("error", err).Fatal("Sync run failed")
	}
}
