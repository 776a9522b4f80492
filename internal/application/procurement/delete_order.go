package procurement

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// DeleteOrderUseCase elimina órdenes de compra que no tienen dependientes.
type DeleteOrderUseCase struct {
	txRunner TxRunner
}

// NewDeleteOrderUseCase construye el caso de uso.
func NewDeleteOrderUseCase(txRunner TxRunner) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{txRunner: txRunner}
}

// Delete verifica dentro de una misma transacción que la orden exista y no tenga lotes
// ni asientos contables asociados, y la elimina.
//
// Retorna:
//   - domain.ErrInvalidInput  si id está vacío.
//   - domain.ErrNotFound      si la orden no existe.
//   - domain.ErrConflict      si tiene lotes o asientos vinculados.
func (uc *DeleteOrderUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.AccountingMovementRepository,
	) error {
		order, err := orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		batches, err := batchRepo.CountByPurchaseOrder(ctx, id)
		if err != nil {
			return err
		}
		if batches > 0 {
			return fmt.Errorf("%w: la orden tiene %d lote(s) recibidos", domain.ErrConflict, batches)
		}
		movements, err := movementRepo.CountByPurchaseOrder(ctx, id)
		if err != nil {
			return err
		}
		if movements > 0 {
			return fmt.Errorf("%w: la orden tiene %d asiento(s) contables", domain.ErrConflict, movements)
		}
		return orderRepo.Delete(ctx, id)
	})
}
