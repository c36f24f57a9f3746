package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "pricecheck/internal/log"
	"pricecheck/internal/services"
)

// RequireSession gates a route on a valid session cookie. With enabled
// false it passes everything through (the ungated lookup variant).
func RequireSession(sess *services.SessionService, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}
		if err := sess.Validate(c.Cookies(SessionCookie)); err != nil {
			reason := "expired"
			if errors.Is(err, services.ErrNoSession) {
				reason = "missing"
			}
			applog.Security(c, "session.denied", map[string]any{"reason": reason})
			return jsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		return c.Next()
	}
}
