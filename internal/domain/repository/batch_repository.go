package repository

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// BatchFilter filtros por llave foránea; campos vacíos no filtran.
type BatchFilter struct {
	ProductID       string
	PurchaseOrderID string
}

// BatchRepository define el puerto de persistencia para lotes.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	GetByID(ctx context.Context, id string) (*entity.Batch, error)
	// List devuelve los lotes ordenados por vencimiento ascendente.
	List(ctx context.Context, filter BatchFilter) ([]*entity.Batch, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	CountByPurchaseOrder(ctx context.Context, purchaseOrderID string) (int, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
	Delete(ctx context.Context, id string) error
}
