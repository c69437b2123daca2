package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talented-backend/config"
	_ "go-talented-backend/docs" // Important for Swagger
	v1 "go-talented-backend/internal/delivery/http/v1"
	"go-talented-backend/internal/repository/postgres"
	"go-talented-backend/internal/usecase"
	"go-talented-backend/pkg/database"
	"go-talented-backend/pkg/genai"
	"go-talented-backend/pkg/logger"
	"go-talented-backend/pkg/redis"
	"go-talented-backend/pkg/storage"
	"go-talented-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Talented.ai Backend API
// @version         1.0
// @description     Job board backend with capacity-constrained applications, ratings and AI-assisted interviews.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talented backend", "port", cfg.Port)

	// 3. Custom validators for request binding
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 6. Setup Media Storage: S3 primary with local filesystem fallback
	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}
	var store storage.Store = fileStore
	if s3cfg := storage.NewS3ConfigFromEnv(); s3cfg.Configured() {
		s3Store, err := storage.NewS3Store(context.Background(), s3cfg)
		if err != nil {
			logger.Log.Warn("S3 unavailable, storing media on local filesystem only", "error", err)
		} else {
			store = storage.NewFallbackStore(s3Store, fileStore, logger.Log)
		}
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	ratingRepo := postgres.NewRatingRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	txRunner := postgres.NewTxRunner(dbPool)

	// 8. Setup Generative AI collaborator
	gen := genai.NewClient(cfg.GoogleAPIKey,
		genai.WithModel(cfg.GenAIModel),
		genai.WithTimeout(time.Duration(cfg.GenAITimeoutMS)*time.Millisecond))

	// 9. Setup UseCases
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, txRunner)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, txRunner)
	ratingUC := usecase.NewRatingUsecase(ratingRepo, applicationRepo, jobRepo, userRepo, txRunner)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo, txRunner)
	assistUC := usecase.NewAssistUsecase(gen, logger.Log)
	userUC := usecase.NewUserUsecase(userRepo)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		RatingUC:      ratingUC,
		InterviewUC:   interviewUC,
		AssistUC:      assistUC,
		UserUC:        userUC,
		Store:         store,
		Config:        cfg,
		Logger:        logger.Log,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
