package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseOrderHandler struct {
	uc      *usecase.PurchaseOrderUseCase
	deleter *procurement.DeleteOrderUseCase
	batches *usecase.BatchUseCase
	sheet   *procurement.OrderSheetUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(
	uc *usecase.PurchaseOrderUseCase,
	deleter *procurement.DeleteOrderUseCase,
	batches *usecase.BatchUseCase,
	sheet *procurement.OrderSheetUseCase,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, deleter: deleter, batches: batches, sheet: sheet}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  Sin status la orden inicia en PENDING.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
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
// @Summary      Obtener orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la orden"
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        status         query  string  false  "PENDING | APPROVED | SHIPPED | RECEIVED | CANCELLED"
// @Param        delivery_from  query  string  false  "Entrega esperada desde (YYYY-MM-DD, inclusive)"
// @Param        delivery_to    query  string  false  "Entrega esperada hasta (YYYY-MM-DD, inclusive)"
// @Param        min_value      query  string  false  "Valor mínimo (inclusive)"
// @Param        max_value      query  string  false  "Valor máximo (inclusive)"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	page := pageRequest(c)
	q := dto.PurchaseOrderQuery{
		Status:       c.Query("status"),
		DeliveryFrom: c.Query("delivery_from"),
		DeliveryTo:   c.Query("delivery_to"),
		MinValue:     c.Query("min_value"),
		MaxValue:     c.Query("max_value"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	out, err := h.uc.List(c.UserContext(), q, ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListOverdue godoc
// @Summary      Órdenes atrasadas
// @Description  Órdenes no terminales cuya entrega esperada es anterior a la fecha de referencia.
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {array}   dto.PurchaseOrderResponse
// @Router       /api/purchase-orders/overdue [get]
func (h *PurchaseOrderHandler) ListOverdue(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.ListOverdue(c.UserContext(), ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "Orden completa"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de compra
// @Description  Rechazada con 409 si la orden tiene lotes o asientos contables vinculados.
// @Tags         purchase-orders
// @Security     Bearer
// @Param        id   path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.deleter.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Batches godoc
// @Summary      Lotes recibidos de la orden
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la orden"
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {object}  dto.BatchListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/batches [get]
func (h *PurchaseOrderHandler) Batches(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	id := c.Params("id")
	if _, err := h.uc.GetByID(c.UserContext(), id, ref); err != nil {
		return writeError(c, err)
	}
	out, err := h.batches.List(c.UserContext(), repository.BatchFilter{PurchaseOrderID: id}, ref)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Hoja PDF de la orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la orden"
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	ref, err := referenceDate(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	pdfBytes, filename, err := h.sheet.DownloadPDF(c.UserContext(), c.Params("id"), ref)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
