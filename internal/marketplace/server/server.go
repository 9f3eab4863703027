package server

import (
	"errors"
	"time"

	"marketplace/internal/common/config"
	"marketplace/internal/common/middleware"
	"marketplace/internal/marketplace/handlers"
	"marketplace/internal/marketplace/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/sirupsen/logrus"
)

// ============================================================
// Marketplace App
// ============================================================

// New собирает fiber-приложение со всеми маршрутами.
func New(cfg *config.Config, repo *repository.Repository, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Marketplace",
		ErrorHandler: errorHandler(log),
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check & Docs Routes
	// ============================================================

	health := handlers.NewHealthHandler(repo)
	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe)
	app.Get("/health/startup", health.StartupProbe)

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	// ============================================================
	// Resource Routes
	// ============================================================

	users := handlers.NewUserHandler(repo, log)
	app.Get("/users", users.List)
	app.Post("/users", users.Create)
	app.Get("/users/:id", users.Get)
	app.Put("/users/:id", users.Update)
	app.Delete("/users/:id", users.Delete)

	orders := handlers.NewOrderHandler(repo, log)
	app.Get("/orders", orders.List)
	app.Post("/orders", orders.Create)
	app.Get("/orders/:id", orders.Get)
	app.Put("/orders/:id", orders.Update)
	app.Delete("/orders/:id", orders.Delete)

	offers := handlers.NewOfferHandler(repo, log)
	app.Get("/offers", offers.List)
	app.Post("/offers", offers.Create)
	app.Get("/offers/:id", offers.Get)
	app.Put("/offers/:id", offers.Update)
	app.Delete("/offers/:id", offers.Delete)

	return app
}

// errorHandler отвечает JSON и на ошибки самого fiber (404 маршрута, паники).
func errorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"method":     c.Method(),
			"path":       c.Path(),
		}).WithError(err).Error("unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
