package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/handlers"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/middleware"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/platform/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.S3Bucket == "" {
		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	userService := user.NewService(db)
	tokenService := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenLifetimeHours)*time.Hour)
	lockoutTracker := auth.NewLockoutTracker(cfg.MaxLoginAttempts, time.Duration(cfg.LockoutDurationMinutes)*time.Minute)
	authService := auth.NewService(userService, tokenService, lockoutTracker, cfg.Allowlist())

	app := fiber.New()

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())
	app.Use(cors.New())

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("db", db)
		c.Locals("auth", authService)
		return c.Next()
	})

	if cfg.S3Bucket == "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	api := app.Group("/api")
	api.Get("/", handlers.GetAppInfo)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/local", handlers.Login)
	authGroup.Get("/validate", middleware.AuthMiddleware, handlers.ValidateToken)

	api.Get("/categories", handlers.GetCategories)
	api.Post("/categories", middleware.AuthMiddleware, handlers.CreateCategory)

	api.Get("/articles", handlers.GetArticles)
	api.Get("/articles/:id", handlers.GetArticle)
	api.Post("/articles", middleware.AuthMiddleware, handlers.CreateArticle)

	api.Post("/upload", middleware.AuthMiddleware, handlers.UploadImage)
	api.Post("/contact", handlers.SubmitContact)

	admin := api.Group("/admin", middleware.AuthMiddleware, middleware.AdminMiddleware)
	admin.Post("/users", handlers.CreateUser)

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	log.Fatal(app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)))
}
