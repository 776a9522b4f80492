package procurement

import (
	"context"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.AccountingMovementRepository,
	) error) error
}

// OrderSheetGenerator genera la hoja (PDF) de una orden de compra.
type OrderSheetGenerator interface {
	GenerateOrderSheet(ctx context.Context, sheet OrderSheet) ([]byte, error)
}

// OrderSheet datos ya evaluados que se imprimen en la hoja de la orden.
type OrderSheet struct {
	Order         *entity.PurchaseOrder
	ReferenceDate time.Time
	Overdue       bool
	Lines         []OrderSheetLine
	Ledger        policy.LedgerSummary // asientos vinculados a la orden
}

// OrderSheetLine un lote recibido con el nombre de su producto y su estado de vencimiento.
type OrderSheetLine struct {
	Batch       *entity.Batch
	ProductName string
	Expired     bool
	NearExpiry  bool
}
