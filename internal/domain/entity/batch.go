package entity

import "time"

// Batch (lote) es una recepción de mercancía de una orden de compra.
// Solo Quantity puede corregirse después de creado; los lotes vencidos se conservan como historial.
type Batch struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	ManufactureDate time.Time
	ExpiryDate      time.Time
	Quantity        int
	CreatedAt       time.Time
}
