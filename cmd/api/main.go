package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-grader/internal/adapter"
	"quiz-grader/internal/adapter/reference"
	"quiz-grader/internal/cache"
	"quiz-grader/internal/config"
	"quiz-grader/internal/domain"
	"quiz-grader/internal/handler"
	"quiz-grader/internal/logger"
	"quiz-grader/internal/middleware"
	"quiz-grader/internal/service"
	"quiz-grader/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()
		requestID := util.NewULID()
		c.Locals("request_id", requestID)

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize the reference-answer provider
	var provider domain.ReferenceAnswerProvider
	switch cfg.LLM.Source {
	case "openai":
		appLogger.Info("Initializing OpenAI reference-answer provider", zap.String("model", cfg.LLM.OpenAI.Model))
		provider, err = reference.NewOpenAIProvider(cfg.LLM.OpenAI, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI provider", zap.Error(err))
		}
	case "ollama":
		appLogger.Info("Initializing Ollama reference-answer provider",
			zap.String("server_url", cfg.LLM.Ollama.ServerURL), zap.String("model", cfg.LLM.Ollama.Model))
		provider, err = reference.NewOllamaProvider(cfg.LLM.Ollama, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama provider", zap.Error(err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported LLM source: %s. Please check llm.source in config.", cfg.LLM.Source))
	}

	// Optional Redis-backed reference-answer cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		provider = reference.NewCachedProvider(provider, cacheAdapter, cfg.Cache.ReferenceAnswerTTL)
		appLogger.Info("Reference-answer cache enabled",
			zap.Duration("ttl", cfg.Cache.ReferenceAnswerTTL))
	} else {
		appLogger.Info("Redis address not configured, reference-answer cache disabled")
	}

	// Initialize services
	evaluationService := service.NewEvaluationService(provider, cfg.LLM.MaxConcurrent)
	appLogger.Info("EvaluationService initialized", zap.Int("max_concurrent", cfg.LLM.MaxConcurrent))

	// Initialize handlers
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Get("/questions", evaluationHandler.GetQuestions)
	apiGroup.Post("/evaluate", evaluationHandler.Evaluate)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
