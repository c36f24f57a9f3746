package handlers

import "github.com/gofiber/fiber/v2"

// jsonError writes the error envelope shared by every API failure path.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
