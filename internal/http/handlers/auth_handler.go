package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "pricecheck/internal/log"
	"pricecheck/internal/services"
)

// SessionCookie holds the session expiry as plain epoch seconds. The
// value is not signed; the HttpOnly flag is the only trust boundary.
const SessionCookie = "session_exp"

type AuthHandler struct {
	Sessions *services.SessionService
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_body"})
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	exp, err := h.Sessions.Login(req.Password)
	switch {
	case errors.Is(err, services.ErrEmptyPassword):
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "empty"})
		return jsonError(c, fiber.StatusBadRequest, "password required")
	case errors.Is(err, services.ErrWrongPassword):
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "mismatch"})
		return jsonError(c, fiber.StatusUnauthorized, "wrong password")
	case err != nil:
		applog.Error(c, "auth.login", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    strconv.FormatInt(exp.Unix(), 10),
		Path:     "/",
		MaxAge:   int(h.Sessions.TTL.Seconds()),
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // enable true behind TLS
	})
	applog.Audit(c, "auth.login.success", map[string]any{"expires_at": exp.Unix()})
	return c.JSON(fiber.Map{"success": true, "expires_at": exp.Unix()})
}
