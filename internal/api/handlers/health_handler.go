package handlers

import (
	"campuschat/internal/dto"
	"campuschat/internal/knowledge"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *knowledge.Store
}

func NewHealthHandler(store *knowledge.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:        "ok",
		CorpusEntries: len(h.store.Snapshot().Entries),
	})
}
