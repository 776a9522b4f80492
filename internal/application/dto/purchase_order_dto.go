package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	Value            decimal.Decimal `json:"value"`
	ExpectedDelivery string          `json:"expected_delivery" validate:"required,datetime=2006-01-02"`
	Status           string          `json:"status" validate:"omitempty,order_status"` // vacío = PENDING
}

// UpdatePurchaseOrderRequest reemplazo completo de la orden.
type UpdatePurchaseOrderRequest struct {
	Value            decimal.Decimal `json:"value"`
	ExpectedDelivery string          `json:"expected_delivery" validate:"required,datetime=2006-01-02"`
	Status           string          `json:"status" validate:"required,order_status"`
}

// PurchaseOrderQuery filtros de listado (query string).
type PurchaseOrderQuery struct {
	Status       string
	DeliveryFrom string
	DeliveryTo   string
	MinValue     string
	MaxValue     string
	Limit        int
	Offset       int
}

// PurchaseOrderResponse salida de una orden.
type PurchaseOrderResponse struct {
	ID               string          `json:"id"`
	Value            decimal.Decimal `json:"value"`
	ExpectedDelivery string          `json:"expected_delivery"`
	Status           string          `json:"status"`
	Overdue          bool            `json:"overdue"`
	NextStatuses     []string        `json:"next_statuses"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
