package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/holextra/accounts-api/internal/config"     // Internal config loader
	"github.com/holextra/accounts-api/internal/database"   // Document store gateway
	"github.com/holextra/accounts-api/internal/handler"    // HTTP handlers
	"github.com/holextra/accounts-api/internal/middleware" // Rate limit and cache middleware
	"github.com/holextra/accounts-api/internal/queue"      // Account audit consumer
	"github.com/holextra/accounts-api/internal/repository" // Data access layer
	"github.com/holextra/accounts-api/internal/router"     // Route registration
	"github.com/holextra/accounts-api/internal/service"    // Business rules
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env always wins
	cfg := config.Load()

	// The gateway opens a fresh store connection per operation, so there is
	// nothing to dial here; bad credentials surface on the first request.
	gw := database.New(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBAuthDB, cfg.DBName)
	users := repository.NewUserRepo(gw, cfg.DBCollection)
	svc := service.NewUserService(users, cfg.JWTSecret)

	// Redis is optional; a nil client turns both middlewares into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	loginLimiter := middleware.NewLoginLimiter(config.LoadRateLimit(), rdb)
	listingCache := middleware.NewListingCache(config.LoadCache(), rdb)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAccounts(e, handler.NewAuthHandler(svc), handler.NewUserHandler(svc), loginLimiter, listingCache)

	// Audit consumer appends account events to logs/accounts.log and keeps
	// reconnecting on broker failures.
	go queue.StartAccountConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
