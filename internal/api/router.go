package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/backfrontdevops/banking-api/docs"
	"github.com/backfrontdevops/banking-api/internal/api/handler"
	"github.com/backfrontdevops/banking-api/internal/api/middleware"
	"github.com/backfrontdevops/banking-api/internal/core/service"
	"github.com/backfrontdevops/banking-api/internal/infrastructure/config"
	"github.com/backfrontdevops/banking-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/backfrontdevops/banking-api/internal/infrastructure/db/redis"
	"github.com/backfrontdevops/banking-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("banking"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisinfra.NewLoginThrottle(rdb, cfg.LoginMaxFailures, cfg.LoginFailureWindow)
	}

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := service.NewAccountService(accountRepo, log)

	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Open routes ---
	e.GET("/", homeHandler.Welcome)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/users/", authHandler.Users, authMiddleware)
	e.POST("/account_add/", accountHandler.Create, authMiddleware)
	e.GET("/me", accountHandler.Me, authMiddleware)
	e.POST("/deposit", accountHandler.Deposit, authMiddleware)
	e.GET("/compte/:iban", accountHandler.Detail, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
