package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// PurchaseOrderFilter filtros de igualdad y rangos inclusivos; punteros nil no filtran.
type PurchaseOrderFilter struct {
	Status       *entity.OrderStatus
	DeliveryFrom *time.Time
	DeliveryTo   *time.Time
	MinValue     *decimal.Decimal
	MaxValue     *decimal.Decimal
	Limit        int
	Offset       int
}

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// Update reemplaza el registro completo (incluido el estado) tal cual se recibe.
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	List(ctx context.Context, filter PurchaseOrderFilter) ([]*entity.PurchaseOrder, error)
	// ListOpenDeliveredBefore órdenes no terminales con entrega esperada anterior a date.
	ListOpenDeliveredBefore(ctx context.Context, date time.Time) ([]*entity.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}
