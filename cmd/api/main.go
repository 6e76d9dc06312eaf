package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"art-historian/config"
	_ "art-historian/docs" // Swagger docs
	"art-historian/internal/artwork"
	artworkUC "art-historian/internal/artwork/usecase"
	chatUC "art-historian/internal/chat/usecase"
	"art-historian/internal/conversation/memory"
	feedbackUC "art-historian/internal/feedback/usecase"
	"art-historian/internal/httpserver"
	"art-historian/internal/middleware"
	"art-historian/pkg/llmprovider"
	"art-historian/pkg/log"
)

// @title       Art Historian API
// @description Multilingual art historian chat assistant backed by Gemini, with a daily artwork catalog.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Art Historian...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Generator
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers: %v", llmManager.ProviderNames())

	// 4. Conversation state
	store := memory.New(memory.Config{
		MaxEntries: cfg.Conversation.MaxEntries,
		TTL:        cfg.Conversation.TTL,
	})

	// 5. Use cases
	chat := chatUC.New(store, llmManager, logger, chatUC.Config{
		Temperature:     cfg.Generation.Temperature,
		MaxOutputTokens: cfg.Generation.MaxOutputTokens,
		HistoryWindow:   cfg.Conversation.HistoryWindow,
		Timeout:         cfg.Generation.Timeout,
	})
	artworks := artworkUC.New(artwork.DefaultCatalog(), logger)
	feedback := feedbackUC.New(logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
		},
		ChatUC:     chat,
		ArtworkUC:  artworks,
		FeedbackUC: feedback,
		Store:      store,
		Providers:  llmManager.ProviderNames(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
