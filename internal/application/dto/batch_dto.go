package dto

import "time"

// CreateBatchRequest entrada para registrar un lote recibido.
type CreateBatchRequest struct {
	PurchaseOrderID string `json:"purchase_order_id" validate:"required"`
	ProductID       string `json:"product_id" validate:"required"`
	ManufactureDate string `json:"manufacture_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate      string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Quantity        int    `json:"quantity" validate:"min=0"`
}

// UpdateBatchQuantityRequest corrección de cantidad (único campo mutable de un lote).
type UpdateBatchQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// BatchResponse salida de un lote, con su estado de vencimiento respecto a la fecha de referencia.
type BatchResponse struct {
	ID              string    `json:"id"`
	PurchaseOrderID string    `json:"purchase_order_id"`
	ProductID       string    `json:"product_id"`
	ManufactureDate string    `json:"manufacture_date"`
	ExpiryDate      string    `json:"expiry_date"`
	Quantity        int       `json:"quantity"`
	Expired         bool      `json:"expired"`
	NearExpiry      bool      `json:"near_expiry"`
	CreatedAt       time.Time `json:"created_at"`
}

// BatchListResponse lista de lotes.
type BatchListResponse struct {
	Items         []BatchResponse `json:"items"`
	ReferenceDate string          `json:"reference_date"`
}
