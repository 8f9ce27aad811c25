package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campuschat/internal/api"
	"campuschat/internal/api/handlers"
	"campuschat/internal/knowledge"
	"campuschat/internal/repository"
	"campuschat/internal/service"
	"campuschat/pkg/config"
	"campuschat/pkg/logger"
	"campuschat/pkg/postgres"
	"campuschat/pkg/ratelimit"

	"go.uber.org/zap"
)

// @title Campuschat API
// @version 1.0
// @description Knowledge-base question answering service with retrieval, re-ranking and generative fallback

// @contact.name API Support
// @contact.email support@campuschat.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Campuschat service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	learnedRepo := repository.NewLearnedAnswerRepository(db, appLogger)
	unansweredRepo := repository.NewUnansweredRepository(db, appLogger)
	feedbackRepo := repository.NewFeedbackRepository(db, appLogger)

	// Build the search corpus from static knowledge plus learned answers
	sources, err := knowledge.LoadSources(cfg.Pipeline.DataDir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge sources", zap.Error(err))
	}
	store := knowledge.NewStore(knowledge.StaticEntries(sources), learnedRepo, appLogger)
	if err := store.Reload(ctx); err != nil {
		appLogger.Fatal("Failed to build search corpus", zap.Error(err))
	}

	// Initialize the generation backend
	var (
		generator service.Generator
		suggester service.Suggester
	)
	switch cfg.LLM.Provider {
	case "openai":
		openaiService := service.NewOpenAIService(&cfg.LLM, appLogger)
		generator, suggester = openaiService, openaiService
		appLogger.Info("Using OpenAI generation backend", zap.String("model", cfg.LLM.OpenAIModel))
	default:
		llmService, err := service.NewLLMService(&cfg.LLM, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
		}
		defer llmService.Close()
		generator, suggester = llmService, llmService
		appLogger.Info("Using GigaChat generation backend")
	}

	// Initialize services
	resolver := service.NewResolverService(store, generator, suggester, learnedRepo, unansweredRepo, &cfg.Pipeline, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, appLogger)

	// Rate limiters: one shared across all API traffic, one per query session
	globalLimiter := ratelimit.New(ratelimit.Config{
		MaxRequests: cfg.RateLimit.GlobalMaxRequests,
		Window:      cfg.RateLimit.GlobalWindow,
		OnLimitExceeded: func(key string) {
			appLogger.Warn("Global rate limit exceeded", zap.String("key", key))
		},
	})
	defer globalLimiter.Stop()

	queryLimiter := ratelimit.New(ratelimit.Config{
		MaxRequests: cfg.RateLimit.QueryMaxRequests,
		Window:      cfg.RateLimit.QueryWindow,
	})
	defer queryLimiter.Stop()

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(resolver, queryLimiter, appLogger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, appLogger)
	healthHandler := handlers.NewHealthHandler(store)

	// Setup router
	app := api.SetupRouter(chatHandler, feedbackHandler, healthHandler, globalLimiter, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
