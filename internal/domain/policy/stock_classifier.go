// Package policy reúne las reglas de negocio puras del dominio de compras:
// clasificación de stock, vencimiento de lotes, ciclo de vida de órdenes y saldos contables.
// Ninguna función de este paquete lee el reloj ni toca persistencia; "hoy" siempre llega como parámetro.
package policy

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// StockStatus categoría de salud del stock de un producto.
type StockStatus string

// Categorías de stock.
const (
	StockUndefined StockStatus = "UNDEFINED"
	StockZero      StockStatus = "ZERO"
	StockCritical  StockStatus = "CRITICAL"
	StockLow       StockStatus = "LOW"
	StockExcess    StockStatus = "EXCESS"
	StockNormal    StockStatus = "NORMAL"
)

// ClassifyStock deriva la categoría de stock para la cantidad actual del producto.
// Precedencia (gana la primera): UNDEFINED, ZERO, CRITICAL, LOW, EXCESS, NORMAL.
// Un umbral nil no dispara su regla. Con umbrales desordenados el resultado sigue esta
// misma precedencia sin intentar corregirlos.
func ClassifyStock(product *entity.Product, quantity *int) StockStatus {
	if quantity == nil {
		return StockUndefined
	}
	q := *quantity
	if q == 0 {
		return StockZero
	}
	if product == nil {
		return StockNormal
	}
	if product.ReorderPoint != nil && q <= *product.ReorderPoint {
		return StockCritical
	}
	if product.StockMin != nil && q <= *product.StockMin {
		return StockLow
	}
	if product.StockMax != nil && q >= *product.StockMax {
		return StockExcess
	}
	return StockNormal
}
