package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"pricecheck/internal/config"
	"pricecheck/internal/http/handlers"
	applog "pricecheck/internal/log"
	"pricecheck/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New(cfg.TemplateDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false, "message": "internal error",
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
	}))

	// ---------- Static assets & page ----------
	app.Static("/static", cfg.StaticDir)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"SessionSeconds": int(cfg.SessionTTL.Seconds()),
		})
	})

	// ---------- API ----------
	deps := handlers.NewDeps(db, cfg)
	api := app.Group("/api")

	// Daily passwords are guessable; throttle guessing
	api.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 5 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "too many attempts, retry later",
			})
		},
	}), deps.AuthHandler.Login)

	api.Get("/price",
		handlers.RequireSession(deps.Sessions, cfg.PriceRequireSession),
		deps.PriceHandler.Lookup)
	api.Post("/price-check", deps.PriceHandler.Check)

	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Patch("/orders/:id/status", deps.OrderHandler.UpdateStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
