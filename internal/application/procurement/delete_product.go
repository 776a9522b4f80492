package procurement

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// DeleteProductUseCase elimina productos del catálogo que nunca recibieron lotes.
type DeleteProductUseCase struct {
	txRunner TxRunner
}

// NewDeleteProductUseCase construye el caso de uso.
func NewDeleteProductUseCase(txRunner TxRunner) *DeleteProductUseCase {
	return &DeleteProductUseCase{txRunner: txRunner}
}

// Delete verifica el producto, cuenta sus lotes y lo elimina en la misma transacción.
func (uc *DeleteProductUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseOrderRepository,
		batchRepo repository.BatchRepository,
		_ repository.AccountingMovementRepository,
	) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		n, err := batchRepo.CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: el producto tiene %d lote(s) registrados", domain.ErrConflict, n)
		}
		return productRepo.Delete(ctx, id)
	})
}
