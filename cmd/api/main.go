package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/config"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/handler"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/middleware"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/router"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/service"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/task"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	grader, err := ai.NewOpenAIGrader(ai.OpenAIConfig{
		APIKey:      cfg.AIAPIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: float32(cfg.AITemperature),
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("failed to create ai grader: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	registry := task.NewRegistry()
	dispatcher := task.NewDispatcher(grader, cfg.QueueSize, logger)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher.Start(workerCtx, cfg.QueueWorkers)

	evaluationService := service.NewEvaluationService(registry, dispatcher, validate, logger)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		EvaluationHandler: evaluationHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
