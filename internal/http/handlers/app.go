package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	jsoniter "github.com/json-iterator/go"

	"luxemarket/internal/config"
	applog "luxemarket/internal/log"
	"luxemarket/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const msgOops = "Something went wrong. Please try again."

// NewApp builds the Fiber app with middleware and every route mounted.
func NewApp(cfg config.Config, d *Deps, m *metrics.Metrics) *fiber.App {
	engine := html.New(cfg.TemplateDir, ".html")
	engine.AddFunc("money", money)
	engine.AddFunc("discount", discount)
	engine.AddFunc("lowest", lowest)

	app := fiber.New(fiber.Config{
		Views:        engine,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: applogWriter{},
	}))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"err": err.Error()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))

	app.Static("/static", cfg.MediaDir)

	Register(app, d, m)

	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "Page not found")
	})
	return app
}

// Register mounts page, API and operational routes.
func Register(app fiber.Router, d *Deps, m *metrics.Metrics) {
	sess := Session(d.Notices)

	app.Get("/", sess, d.HomeHandler.Home)
	app.Get("/marketplace", sess, d.MarketplaceHandler.Page)
	app.Post("/marketplace/filters", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|search"
		},
	}), sess, d.MarketplaceHandler.Filters)

	app.Get("/product", func(c *fiber.Ctx) error { return notFound(c, msgGone) })
	app.Get("/product/:id", sess, d.ProductHandler.Detail)
	app.Post("/product/:id/purchase", sess, d.ProductHandler.Purchase)

	app.Get("/favorites", sess, d.FavoritesHandler.List)
	app.Post("/favorites", sess, d.FavoritesHandler.Save)
	app.Post("/favorites/delete", sess, d.FavoritesHandler.Unsave)

	api := app.Group("/api/v1")
	api.Get("/products", d.APIHandler.Products)
	api.Get("/products/:id/prices", d.APIHandler.Prices)
	api.Post("/search", d.APIHandler.StartSearch)
	api.Get("/search/:id", d.APIHandler.SearchStatus)
	api.Get("/availability", limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|avail"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.availability.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), d.InventoryHandler.Check)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}
}

// ErrorHandler logs the failure and shows a friendly page without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := msgOops
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		status = fe.Code
		msg = "Page not found"
		if status != fiber.StatusNotFound {
			msg = "That request could not be handled."
		}
	}
	if status >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(status).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(status).SendString(msg)
	}
	return nil
}

// applogWriter sends Fiber access lines through the process logger.
type applogWriter struct{}

func (applogWriter) Write(p []byte) (int, error) {
	applog.Logger().Info("access", "line", strings.TrimSpace(string(p)))
	return len(p), nil
}
