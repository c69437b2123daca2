package v1

import (
	"log/slog"
	"net/http"
	"time"

	"go-talented-backend/config"
	"go-talented-backend/internal/delivery/http/middleware"
	"go-talented-backend/internal/delivery/http/response"
	"go-talented-backend/internal/domain"
	"go-talented-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	RatingUC      domain.RatingUsecase
	InterviewUC   domain.InterviewUsecase
	AssistUC      domain.AssistUsecase
	UserUC        domain.UserUsecase
	Store         storage.Store
	Config        *config.Config
	Logger        *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Logger))
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window), deps.Logger))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))

	// Media uploads get a stricter per-IP limit on top of auth
	uploads := protected.Group("")
	uploads.Use(middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window), deps.Logger))

	NewJobHandler(v1, protected, deps.JobUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewRatingHandler(protected, deps.RatingUC)
	NewInterviewHandler(protected, uploads, deps.InterviewUC, deps.Store)
	NewAssistHandler(protected, deps.AssistUC)
	NewUserHandler(protected, deps.UserUC)
	NewUploadHandler(protected, uploads, deps.UserUC, deps.Store)

	return r
}
