package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/inventory"
)

// ReplenishmentHandler expone la lista de reposición.
type ReplenishmentHandler struct {
	uc *inventory.ReplenishmentUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *inventory.ReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// Generate godoc
// @Summary      Lista de reposición
// @Description  Productos en ZERO, CRITICAL o LOW según sus lotes no vencidos, con cantidad sugerida.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.ReplenishmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/replenishment [get]
func (h *ReplenishmentHandler) Generate(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.GenerateReplenishmentList(c.UserContext(), ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
