package router

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/wichananm65/tourism-recsys/internal/config"
	"github.com/wichananm65/tourism-recsys/internal/logging"
	"github.com/wichananm65/tourism-recsys/internal/metrics"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterPublicRoutes(app fiber.Router)
}

// New builds the Fiber app: middleware, general endpoints, then the feature
// routes in the order given.
func New(cfg config.Config, handlers ...RouteRegistrar) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Service.Name,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(logging.RequestLogger())
	app.Use(metrics.Middleware())
	// innermost, so a recovered panic is still logged and counted as a 500
	app.Use(recover.New())
	setupCORS(app, cfg.Server.CORSOrigins)

	app.Get("/", rootHandler(cfg.Service))
	app.Get("/health", healthHandler(cfg.Service))
	app.Get("/metrics", metrics.Handler())

	for _, h := range handlers {
		h.RegisterPublicRoutes(app)
	}
	return app
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func rootHandler(svc config.ServiceConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Indonesia Tourism RecSys API",
			"service": svc.Name,
			"version": svc.Version,
			"endpoints": fiber.Map{
				"health":          "/health",
				"metrics":         "/metrics",
				"recommendations": "/api/v1/recommend",
				"places":          "/api/v1/places",
				"popular":         "/api/v1/places/popular",
				"stats":           "/api/v1/stats",
			},
		})
	}
}

// healthHandler always reports healthy; the database and model labels are
// fixed because the catalog lives in process.
func healthHandler(svc config.ServiceConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			"service":   svc.Name,
			"database":  "connected",
			"model":     "loaded",
		})
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		logging.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}
