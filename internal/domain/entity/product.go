package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de compras.
// StockMax, StockMin y ReorderPoint son umbrales independientes: no se valida el orden
// ReorderPoint <= StockMin <= StockMax al guardar; un umbral nil no participa en la clasificación.
type Product struct {
	ID                string
	Name              string
	Description       string
	StorageLocationID *string
	UnitMeasureID     string
	Barcode           *string
	IdealTemperature  *decimal.Decimal // °C con un decimal, rango -99.9..99.9
	StockMax          *int
	StockMin          *int
	ReorderPoint      *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
