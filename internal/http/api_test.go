package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"pricecheck/internal/config"
	"pricecheck/internal/http/handlers"
	"pricecheck/internal/repos"
)

// newTestApp wires the API routes against a fresh in-memory store with
// the default demo seed.
func newTestApp(t *testing.T, requireSession bool) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{
		SessionTTL:          1800 * time.Second,
		PriceRequireSession: requireSession,
		PriceActiveOnly:     true,
	}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/login", deps.AuthHandler.Login)
	api.Get("/price",
		handlers.RequireSession(deps.Sessions, cfg.PriceRequireSession),
		deps.PriceHandler.Lookup)
	api.Post("/price-check", deps.PriceHandler.Check)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Patch("/orders/:id/status", deps.OrderHandler.UpdateStatus)
	return app
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
