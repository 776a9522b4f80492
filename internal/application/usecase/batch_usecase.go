package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// BatchUseCase registro y consulta de lotes, con su estado de vencimiento.
type BatchUseCase struct {
	repo     repository.BatchRepository
	products repository.ProductRepository
	orders   repository.PurchaseOrderRepository
	clock    Clock
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	repo repository.BatchRepository,
	products repository.ProductRepository,
	orders repository.PurchaseOrderRepository,
	clock Clock,
) *BatchUseCase {
	return &BatchUseCase{repo: repo, products: products, orders: orders, clock: clock}
}

// Create registra un lote recibido de una orden de compra.
func (uc *BatchUseCase) Create(ctx context.Context, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if err := requireID("purchase_order_id", in.PurchaseOrderID); err != nil {
		return nil, err
	}
	if err := requireID("product_id", in.ProductID); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, invalid("quantity no puede ser negativa")
	}
	manufactured, err := dto.ParseDate(in.ManufactureDate)
	if err != nil {
		return nil, invalid("manufacture_date: %v", err)
	}
	expires, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, invalid("expiry_date: %v", err)
	}
	if expires.Before(manufactured) {
		return nil, invalid("expiry_date anterior a manufacture_date")
	}

	order, err := uc.orders.GetByID(ctx, in.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if order == nil || product == nil {
		return nil, domain.ErrNotFound
	}

	batch := &entity.Batch{
		ID:              uuid.New().String(),
		PurchaseOrderID: order.ID,
		ProductID:       product.ID,
		ManufactureDate: manufactured,
		ExpiryDate:      expires,
		Quantity:        in.Quantity,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch, referenceDate(uc.clock, nil)), nil
}

// GetByID obtiene un lote evaluado contra la fecha de referencia.
func (uc *BatchUseCase) GetByID(ctx context.Context, id string, ref *time.Time) (*dto.BatchResponse, error) {
	batch, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch, referenceDate(uc.clock, ref)), nil
}

// List lista lotes por producto y/o orden, ordenados por vencimiento.
func (uc *BatchUseCase) List(ctx context.Context, filter repository.BatchFilter, ref *time.Time) (*dto.BatchListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toBatchList(list, referenceDate(uc.clock, ref)), nil
}

// ListValid lotes no vencidos a la fecha de referencia.
func (uc *BatchUseCase) ListValid(ctx context.Context, filter repository.BatchFilter, ref *time.Time) (*dto.BatchListResponse, error) {
	return uc.listBy(ctx, filter, ref, policy.ValidBatches)
}

// ListExpired lotes vencidos a la fecha de referencia.
func (uc *BatchUseCase) ListExpired(ctx context.Context, filter repository.BatchFilter, ref *time.Time) (*dto.BatchListResponse, error) {
	return uc.listBy(ctx, filter, ref, policy.ExpiredBatches)
}

// ListNearExpiry lotes que vencen dentro de los próximos 30 días (incluido hoy).
func (uc *BatchUseCase) ListNearExpiry(ctx context.Context, filter repository.BatchFilter, ref *time.Time) (*dto.BatchListResponse, error) {
	return uc.listBy(ctx, filter, ref, policy.NearExpiryBatches)
}

// UpdateQuantity corrige la cantidad del lote (único campo mutable).
func (uc *BatchUseCase) UpdateQuantity(ctx context.Context, id string, in dto.UpdateBatchQuantityRequest) (*dto.BatchResponse, error) {
	if in.Quantity == nil {
		return nil, invalid("quantity es requerido")
	}
	if *in.Quantity < 0 {
		return nil, invalid("quantity no puede ser negativa")
	}
	batch, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateQuantity(ctx, id, *in.Quantity); err != nil {
		return nil, err
	}
	batch.Quantity = *in.Quantity
	return toBatchResponse(batch, referenceDate(uc.clock, nil)), nil
}

// Delete elimina un lote registrado por error.
func (uc *BatchUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *BatchUseCase) listBy(
	ctx context.Context,
	filter repository.BatchFilter,
	ref *time.Time,
	selectFn func([]*entity.Batch, time.Time) []*entity.Batch,
) (*dto.BatchListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	today := referenceDate(uc.clock, ref)
	return toBatchList(selectFn(list, today), today), nil
}

func (uc *BatchUseCase) load(ctx context.Context, id string) (*entity.Batch, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	batch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

func toBatchList(list []*entity.Batch, today time.Time) *dto.BatchListResponse {
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b, today))
	}
	return &dto.BatchListResponse{Items: items, ReferenceDate: today.Format(dto.DateLayout)}
}

func toBatchResponse(b *entity.Batch, today time.Time) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:              b.ID,
		PurchaseOrderID: b.PurchaseOrderID,
		ProductID:       b.ProductID,
		ManufactureDate: b.ManufactureDate.Format(dto.DateLayout),
		ExpiryDate:      b.ExpiryDate.Format(dto.DateLayout),
		Quantity:        b.Quantity,
		Expired:         policy.IsExpired(b, today),
		NearExpiry:      policy.IsNearExpiry(b, today),
		CreatedAt:       b.CreatedAt,
	}
}
