package main

import (
	"context"
	"fmt"
	"time"

	"voice-commander/config"
	_ "voice-commander/docs" // Swagger docs
	"voice-commander/internal/backend"
	"voice-commander/internal/classifier"
	commandHTTP "voice-commander/internal/command/delivery/http"
	"voice-commander/internal/command/usecase"
	"voice-commander/internal/history"
	"voice-commander/internal/httpserver"
	"voice-commander/pkg/gemini"
	"voice-commander/pkg/log"
)

// @title       Voice Commander API
// @description Bangla/English voice command dispatcher: intent classification and LLM routing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Voice Commander...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Classifier (Gemini) - the one required adapter
	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Classifier.APIKey,
		Model:  cfg.Classifier.Model,
		APIURL: cfg.Classifier.APIURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize classifier: ", err)
		return
	}
	cl := classifier.New(geminiClient, logger)

	// 4. Specialist backends - each optional, routing degrades without them
	registry := backend.NewRegistryFromConfig(ctx, cfg.Backends, logger)

	// 5. Command history (bounded, in-memory)
	hist, err := history.New(cfg.Command.HistorySize, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize history: ", err)
		return
	}

	// 6. Command UseCase (the Intent Router)
	timeout, tErr := time.ParseDuration(cfg.Command.Timeout)
	if tErr != nil {
		logger.Warnf(ctx, "Invalid command timeout %q, using default: %v", cfg.Command.Timeout, tErr)
		timeout = usecase.DefaultTimeout
	}
	commandUC := usecase.New(logger, cl, registry, hist, timeout)

	// 7. HTTP delivery
	commandHandler := commandHTTP.New(logger, commandUC, registry, hist)

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CommandHandler:  commandHandler,
		RateLimitPerMin: cfg.Command.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
