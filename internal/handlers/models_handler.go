package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

type ModelsHandler struct {
	client services.OpenRouterClient
}

func NewModelsHandler(client services.OpenRouterClient) *ModelsHandler {
	return &ModelsHandler{
		client: client,
	}
}

// HandleListModels handles GET /models. The upstream catalog is returned
// as-is; upstream failures surface as a server error.
func (h *ModelsHandler) HandleListModels(c *fiber.Ctx) error {
	modelList, err := h.client.ListModels(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to list models: %v", err),
		})
	}

	return c.JSON(modelList)
}
