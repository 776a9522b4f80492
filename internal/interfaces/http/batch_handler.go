package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// BatchHandler maneja las peticiones HTTP para lotes.
type BatchHandler struct {
	uc *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lote recibido
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del lote"
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {object}  dto.BatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes por vencimiento
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id         query  string  false  "Filtrar por producto"
// @Param        purchase_order_id  query  string  false  "Filtrar por orden de compra"
// @Param        date               query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	return h.list(c, h.uc.List)
}

// ListValid godoc
// @Summary      Lotes no vencidos
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        date        query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches/valid [get]
func (h *BatchHandler) ListValid(c *fiber.Ctx) error {
	return h.list(c, h.uc.ListValid)
}

// ListExpired godoc
// @Summary      Lotes vencidos
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        date        query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches/expired [get]
func (h *BatchHandler) ListExpired(c *fiber.Ctx) error {
	return h.list(c, h.uc.ListExpired)
}

// ListNearExpiry godoc
// @Summary      Lotes que vencen en los próximos 30 días
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        date        query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches/near-expiry [get]
func (h *BatchHandler) ListNearExpiry(c *fiber.Ctx) error {
	return h.list(c, h.uc.ListNearExpiry)
}

// UpdateQuantity godoc
// @Summary      Corregir cantidad del lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateBatchQuantityRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/quantity [patch]
func (h *BatchHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateBatchQuantityRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         batches
// @Security     Bearer
// @Param        id   path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type batchLister func(ctx context.Context, filter repository.BatchFilter, ref *time.Time) (*dto.BatchListResponse, error)

func (h *BatchHandler) list(c *fiber.Ctx, fn batchLister) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	filter := repository.BatchFilter{
		ProductID:       c.Query("product_id"),
		PurchaseOrderID: c.Query("purchase_order_id"),
	}
	out, err := fn(c.UserContext(), filter, ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
