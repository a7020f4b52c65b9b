package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunseekerapp/sunseeker-backend/internal/config"
	"github.com/sunseekerapp/sunseeker-backend/internal/handlers"
	"github.com/sunseekerapp/sunseeker-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes are public but rate limited: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a bearer access token
	gate := middleware.JWTProtected(cfg)

	post := app.Group("/post", gate)
	post.Post("/", postHandler.Create)
	post.Get("/", postHandler.List)
	post.Get("/sender", postHandler.BySender)
	post.Get("/:id", postHandler.Get)
	post.Put("/:id", postHandler.Update)

	comment := app.Group("/comment", gate)
	comment.Post("/", commentHandler.Create)
	comment.Get("/post/:postId", commentHandler.ByPost)
	comment.Get("/:id", commentHandler.Get)
	comment.Put("/:id", commentHandler.Update)
	comment.Delete("/:id", commentHandler.Delete)

	users := app.Group("/users", gate)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
