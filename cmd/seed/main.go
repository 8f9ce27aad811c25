package main

import (
	"context"
	"log"

	"campuschat/internal/knowledge"
	"campuschat/internal/repository"
	"campuschat/pkg/config"
	"campuschat/pkg/logger"
	"campuschat/pkg/postgres"

	"go.uber.org/zap"
)

// Seeds the corpus_entries table with the flattened knowledge corpus so the
// matcher's search space can be inspected with plain SQL.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	learnedRepo := repository.NewLearnedAnswerRepository(db, appLogger)
	corpusRepo := repository.NewCorpusRepository(db, appLogger)

	appLogger.Info("Building search corpus", zap.String("data_dir", cfg.Pipeline.DataDir))

	sources, err := knowledge.LoadSources(cfg.Pipeline.DataDir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge sources", zap.Error(err))
	}

	store := knowledge.NewStore(knowledge.StaticEntries(sources), learnedRepo, appLogger)
	if err := store.Reload(ctx); err != nil {
		appLogger.Fatal("Failed to build search corpus", zap.Error(err))
	}

	entries := store.Snapshot().Entries
	if err := corpusRepo.ReplaceAll(ctx, entries); err != nil {
		appLogger.Fatal("Failed to store corpus snapshot", zap.Error(err))
	}

	count, err := corpusRepo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to count stored entries", zap.Error(err))
	}

	appLogger.Info("Seeding complete", zap.Int("entries", count))
}
