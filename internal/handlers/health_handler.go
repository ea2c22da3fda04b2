package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealth reports liveness only; no upstream dependency is checked.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
