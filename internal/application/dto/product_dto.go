package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	Description       string           `json:"description" validate:"required"`
	StorageLocationID *string          `json:"storage_location_id"`
	UnitMeasureID     string           `json:"unit_measure_id" validate:"required"`
	Barcode           *string          `json:"barcode" validate:"omitempty,max=64"`
	IdealTemperature  *decimal.Decimal `json:"ideal_temperature"`
	StockMax          *int             `json:"stock_max" validate:"omitempty,min=1"`
	StockMin          *int             `json:"stock_min" validate:"omitempty,min=0"`
	ReorderPoint      *int             `json:"reorder_point" validate:"omitempty,min=0"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil se conservan.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	StorageLocationID *string          `json:"storage_location_id"`
	UnitMeasureID     *string          `json:"unit_measure_id"`
	Barcode           *string          `json:"barcode" validate:"omitempty,max=64"`
	IdealTemperature  *decimal.Decimal `json:"ideal_temperature"`
	StockMax          *int             `json:"stock_max"`
	StockMin          *int             `json:"stock_min"`
	ReorderPoint      *int             `json:"reorder_point"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	StorageLocationID *string          `json:"storage_location_id,omitempty"`
	UnitMeasureID     string           `json:"unit_measure_id"`
	Barcode           *string          `json:"barcode,omitempty"`
	IdealTemperature  *decimal.Decimal `json:"ideal_temperature,omitempty"`
	StockMax          *int             `json:"stock_max,omitempty"`
	StockMin          *int             `json:"stock_min,omitempty"`
	ReorderPoint      *int             `json:"reorder_point,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockStatusResponse clasificación de stock de un producto.
type StockStatusResponse struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
	Status    string `json:"status"`
}
