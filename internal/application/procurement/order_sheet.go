package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// OrderSheetUseCase arma la hoja de una orden de compra: lotes recibidos con su vencimiento,
// indicador de atraso y saldo de los asientos vinculados.
type OrderSheetUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	batchRepo    repository.BatchRepository
	productRepo  repository.ProductRepository
	movementRepo repository.AccountingMovementRepository
	generator    OrderSheetGenerator
	now          func() time.Time
}

// NewOrderSheetUseCase construye el caso de uso inyectando todas sus dependencias.
func NewOrderSheetUseCase(
	orderRepo repository.PurchaseOrderRepository,
	batchRepo repository.BatchRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.AccountingMovementRepository,
	generator OrderSheetGenerator,
	now func() time.Time,
) *OrderSheetUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderSheetUseCase{
		orderRepo:    orderRepo,
		batchRepo:    batchRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		generator:    generator,
		now:          now,
	}
}

// Build reúne los datos de la hoja evaluados a la fecha de referencia (nil = hoy).
func (uc *OrderSheetUseCase) Build(ctx context.Context, orderID string, ref *time.Time) (*OrderSheet, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("hoja: obtener orden: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	today := policy.DateOnly(uc.now())
	if ref != nil {
		today = policy.DateOnly(*ref)
	}

	batches, err := uc.batchRepo.List(ctx, repository.BatchFilter{PurchaseOrderID: order.ID})
	if err != nil {
		return nil, fmt.Errorf("hoja: obtener lotes: %w", err)
	}
	names := make(map[string]string)
	lines := make([]OrderSheetLine, 0, len(batches))
	for _, b := range batches {
		name, ok := names[b.ProductID]
		if !ok {
			name = "Producto " + b.ProductID // fallback
			if p, pErr := uc.productRepo.GetByID(ctx, b.ProductID); pErr == nil && p != nil {
				name = p.Name
			}
			names[b.ProductID] = name
		}
		lines = append(lines, OrderSheetLine{
			Batch:       b,
			ProductName: name,
			Expired:     policy.IsExpired(b, today),
			NearExpiry:  policy.IsNearExpiry(b, today),
		})
	}

	movements, err := uc.movementRepo.List(ctx, repository.MovementFilter{PurchaseOrderID: order.ID})
	if err != nil {
		return nil, fmt.Errorf("hoja: obtener asientos: %w", err)
	}

	return &OrderSheet{
		Order:         order,
		ReferenceDate: today,
		Overdue:       policy.IsOverdue(order, today),
		Lines:         lines,
		Ledger:        policy.Summarize(movements),
	}, nil
}

// DownloadPDF genera el PDF de la hoja y devuelve sus bytes con un nombre de archivo sugerido.
func (uc *OrderSheetUseCase) DownloadPDF(ctx context.Context, orderID string, ref *time.Time) (pdfBytes []byte, filename string, err error) {
	if orderID == "" {
		return nil, "", fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}
	sheet, err := uc.Build(ctx, orderID, ref)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateOrderSheet(ctx, *sheet)
	if err != nil {
		return nil, "", fmt.Errorf("hoja: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("orden_compra_%s.pdf", sheet.Order.ID), nil
}
