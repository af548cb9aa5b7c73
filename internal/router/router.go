package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/config"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/handler"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	EvaluationHandler *handler.EvaluationHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.EvaluationHandler != nil {
		deps.EvaluationHandler.Register(api)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
