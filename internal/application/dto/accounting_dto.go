package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un asiento contable.
type CreateMovementRequest struct {
	EntryNumber     int64           `json:"entry_number" validate:"required,min=1"`
	AccountID       string          `json:"account_id" validate:"required"`
	PurchaseOrderID *string         `json:"purchase_order_id"`
	PostingDate     string          `json:"posting_date" validate:"required,datetime=2006-01-02"`
	Type            string          `json:"type" validate:"required,movement_type"`
	Amount          decimal.Decimal `json:"amount"`
}

// MovementQuery filtros de listado de asientos.
type MovementQuery struct {
	AccountID       string
	PurchaseOrderID string
	From            string
	To              string
	Limit           int
	Offset          int
}

// MovementResponse salida de un asiento.
type MovementResponse struct {
	ID              string          `json:"id"`
	EntryNumber     int64           `json:"entry_number"`
	AccountID       string          `json:"account_id"`
	PurchaseOrderID *string         `json:"purchase_order_id,omitempty"`
	PostingDate     string          `json:"posting_date"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementListResponse lista paginada de asientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse saldo de una cuenta (débitos - créditos), opcionalmente en una ventana de fechas.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	From      string          `json:"from,omitempty"`
	To        string          `json:"to,omitempty"`
	Debits    decimal.Decimal `json:"debits"`
	Credits   decimal.Decimal `json:"credits"`
	Balance   decimal.Decimal `json:"balance"`
	Count     int             `json:"count"`
}
