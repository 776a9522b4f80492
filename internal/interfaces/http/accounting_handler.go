package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// AccountingHandler maneja asientos contables y saldos por cuenta.
type AccountingHandler struct {
	uc *usecase.AccountingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(uc *usecase.AccountingUseCase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar asiento contable
// @Tags         accounting
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Asiento (type D o C)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounting-movements [post]
func (h *AccountingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
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
// @Summary      Obtener asiento contable
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del asiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounting-movements/{id} [get]
func (h *AccountingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asientos contables
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        account_id         query  string  false  "Cuenta"
// @Param        purchase_order_id  query  string  false  "Orden de compra"
// @Param        from               query  string  false  "Desde YYYY-MM-DD (inclusive)"
// @Param        to                 query  string  false  "Hasta YYYY-MM-DD (inclusive)"
// @Param        limit              query  int     false  "Límite"  default(20)
// @Param        offset             query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounting-movements [get]
func (h *AccountingHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	out, err := h.uc.List(c.UserContext(), dto.MovementQuery{
		AccountID:       c.Query("account_id"),
		PurchaseOrderID: c.Query("purchase_order_id"),
		From:            c.Query("from"),
		To:              c.Query("to"),
		Limit:           page.Limit,
		Offset:          page.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo de una cuenta
// @Description  Débitos menos créditos. from y to son opcionales pero deben venir juntos.
// @Tags         accounting
// @Security     Bearer
// @Produce      json
// @Param        account_id  query  string  true   "Cuenta"
// @Param        from        query  string  false  "Desde YYYY-MM-DD (inclusive)"
// @Param        to          query  string  false  "Hasta YYYY-MM-DD (inclusive)"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounting-movements/balance [get]
func (h *AccountingHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.UserContext(), c.Query("account_id"), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
