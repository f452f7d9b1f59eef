package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frontridge/frontridge-api/internal/api/handler"
	"github.com/frontridge/frontridge-api/internal/api/middleware"
	"github.com/frontridge/frontridge-api/internal/core/ports"
	"github.com/frontridge/frontridge-api/internal/core/service"
	mongodb "github.com/frontridge/frontridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/frontridge/frontridge-api/internal/infrastructure/db/redis"
	"github.com/frontridge/frontridge-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil unless the redis cache backend is configured; storage and mailer
// are nil when their credentials are absent, in which case the corresponding
// endpoints fail with a configuration error instead of contacting a provider.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, storage ports.ImageStorage, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("frontridge"))

	// --- Dependencies ---
	var cache ports.WorksCache
	if rdb != nil {
		cache = redisdb.NewWorksCache(rdb, cfg.WorksCacheTTL)
	} else {
		cache = service.NewMemoryWorksCache(cfg.WorksCacheTTL)
	}
	cache = instrumentWorksCache(cache)

	credentials := service.NewCredentialVerifier(cfg.AdminPasswordHash, cfg.AdminPassword, log)
	sessions := service.NewSessionService(cfg.SessionSecret, cfg.SessionDuration)
	workRepo := mongodb.NewWorkRepository(db)
	workService := service.NewWorkService(workRepo, cache, log)
	imageService := service.NewImageService(storage, log)
	contactService := service.NewContactService(mailer, log)

	authHandler := handler.NewAuthHandler(credentials, sessions, cfg.IsProduction())
	workHandler := handler.NewWorkHandler(workService)
	imageHandler := handler.NewImageHandler(imageService)
	contactHandler := handler.NewContactHandler(contactService)

	requireSession := middleware.Session(sessions)

	// --- Admin session routes ---
	e.POST("/api/admin/login", authHandler.Login)
	e.POST("/api/admin/logout", authHandler.Logout)
	e.GET("/api/admin/session", authHandler.Session)

	// --- Works routes (list is public, mutations are admin-only) ---
	e.GET("/api/works", workHandler.List)
	e.POST("/api/works", workHandler.Create, requireSession)
	e.PUT("/api/works/:id", workHandler.Update, requireSession)
	e.DELETE("/api/works/:id", workHandler.Delete, requireSession)

	// --- Image uploads (admin-only) ---
	e.POST("/api/images/upload", imageHandler.Upload, requireSession)

	// --- Contact form ---
	e.POST("/api/contact", contactHandler.Submit)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
