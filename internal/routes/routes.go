package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/parkityourself/piys-backend/internal/apps"
	"github.com/parkityourself/piys-backend/internal/config"
	"github.com/parkityourself/piys-backend/internal/handlers"
	"github.com/parkityourself/piys-backend/internal/middleware"
	"github.com/parkityourself/piys-backend/internal/services"
	"gorm.io/gorm"
)

// Setup mounts all routes. Paths carry no /api prefix: the route table is the
// compatibility contract for existing clients.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Guard chain for bearer routes, applied per route so public paths stay
	// untouched.
	guard := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.LoadUser(cfg, authService),
	}

	// Auth — register/login public, with a stricter rate limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", apps.Guarded(guard, authHandler.Me)...)

	for _, p := range plugins {
		p.RegisterRoutes(app, guard, db, cfg)
	}
}
