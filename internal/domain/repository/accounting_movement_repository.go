package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// MovementFilter filtros para asientos contables; From/To definen un rango inclusivo por fecha de registro.
type MovementFilter struct {
	AccountID       string
	PurchaseOrderID string
	From            *time.Time
	To              *time.Time
	Limit           int // 0 = sin límite
	Offset          int
}

// AccountingMovementRepository define el puerto de persistencia para asientos. No hay Update: son inmutables.
type AccountingMovementRepository interface {
	Create(ctx context.Context, movement *entity.AccountingMovement) error
	GetByID(ctx context.Context, id string) (*entity.AccountingMovement, error)
	GetByEntryNumber(ctx context.Context, entryNumber int64) (*entity.AccountingMovement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.AccountingMovement, error)
	CountByPurchaseOrder(ctx context.Context, purchaseOrderID string) (int, error)
}
