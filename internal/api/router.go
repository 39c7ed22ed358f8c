package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skymarket/classifieds-api/docs"
	"github.com/skymarket/classifieds-api/internal/api/handler"
	"github.com/skymarket/classifieds-api/internal/api/middleware"
	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/service"
	mongodb "github.com/skymarket/classifieds-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skymarket/classifieds-api/internal/infrastructure/db/redis"
	"github.com/skymarket/classifieds-api/internal/infrastructure/http/handlers"
)

// Options carries the router's auth settings.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	adRepo := mongodb.NewAdRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	imageRepo := mongodb.NewImageRepository(db)

	// --- Services ---
	revoker := redisdb.NewTokenRevoker(rdb, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, revoker, opts.JWTSecret, opts.TokenTTL, log)
	imageService := service.NewImageService(imageRepo, log)
	userService := service.NewUserService(userRepo, imageService, log)
	adService := service.NewAdService(adRepo, commentRepo, userRepo, imageService, log)
	commentService := service.NewCommentService(commentRepo, adRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adHandler := handler.NewAdHandler(adService)
	commentHandler := handler.NewCommentHandler(commentService)
	imageHandler := handler.NewImageHandler(imageService)

	authRequired := middleware.Auth(opts.JWTSecret, revoker)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/ads", adHandler.List)
	e.GET("/images/:id", imageHandler.Get)

	// --- Users ---
	users := e.Group("/users", authRequired)
	users.POST("/set_password", authHandler.SetPassword)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)
	users.PATCH("/me/image", userHandler.UpdateAvatar)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)

	// --- Ads ---
	ads := e.Group("/ads", authRequired)
	ads.POST("", adHandler.Create)
	ads.GET("/me", adHandler.ListMine)
	ads.GET("/:id", adHandler.Get)
	ads.PATCH("/:id", adHandler.Update)
	ads.DELETE("/:id", adHandler.Delete)
	ads.PATCH("/:id/image", adHandler.UpdateImage)

	// --- Comments (nested under ads) ---
	ads.GET("/:id/comments", commentHandler.List)
	ads.POST("/:id/comments", commentHandler.Add)
	ads.PATCH("/:id/comments/:commentId", commentHandler.Update)
	ads.DELETE("/:id/comments/:commentId", commentHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
