// @title StudyForge API
// @version 1.0
// @description Document-to-study-material generation service. Upload lecture notes or raw text and receive quizzes and flashcards.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studyforge/internal/adapter"
	"studyforge/internal/adapter/extract"
	"studyforge/internal/adapter/llm"
	"studyforge/internal/cache"
	"studyforge/internal/config"
	"studyforge/internal/database"
	"studyforge/internal/handler"
	"studyforge/internal/logger"
	"studyforge/internal/middleware"
	"studyforge/internal/repository"
	"studyforge/internal/service"
	"studyforge/internal/validation"

	_ "studyforge/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
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
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Completion backend; nil forces the rule-based generation engine.
	completer, err := llm.NewCompleter(context.Background(), cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM completer", zap.Error(err))
	}
	if completer == nil {
		appLogger.Info("No LLM provider configured, using fast generation engine")
	} else {
		appLogger.Info("LLM completer initialized",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Oracle database")

	attemptRepository := repository.NewSQLXAttemptRepository(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	generationService := service.NewGenerationService(completer, cfg.Generation)
	sessionService := service.NewSessionService(cacheAdapter, cfg.Generation.SessionTTL)
	attemptService := service.NewAttemptService(attemptRepository)

	extractor := extract.NewFileExtractor()
	validator := validation.NewValidator()

	studyHandler := handler.NewStudyHandler(
		extractor,
		generationService,
		sessionService,
		attemptService,
		validator,
		cfg.Generation.DefaultCount,
	)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Post("/upload", studyHandler.UploadDocument)
	apiGroup.Post("/generate/quiz", studyHandler.GenerateQuiz)
	apiGroup.Post("/generate/flashcards", studyHandler.GenerateFlashcards)
	apiGroup.Get("/quiz/:session_id", studyHandler.GetQuizSession)
	apiGroup.Post("/quiz/attempt", studyHandler.SubmitAttempt)
	apiGroup.Get("/quiz/attempt/:attempt_id", studyHandler.GetAttempt)
	apiGroup.Get("/quiz/attempts/:session_id", studyHandler.ListAttempts)
	apiGroup.Get("/flashcards/:session_id", studyHandler.GetFlashcardSession)
	apiGroup.Post("/flashcards/:session_id/progress", studyHandler.SaveFlashcardProgress)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
