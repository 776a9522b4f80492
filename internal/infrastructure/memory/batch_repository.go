package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes en memoria.
type BatchRepo struct {
	s *Store
}

// Create guarda una copia del lote.
func (r *BatchRepo) Create(_ context.Context, batch *entity.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.batches[batch.ID] = *batch
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *BatchRepo) GetByID(_ context.Context, id string) (*entity.Batch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// List lotes filtrados, por vencimiento ascendente.
func (r *BatchRepo) List(_ context.Context, filter repository.BatchFilter) ([]*entity.Batch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Batch, 0)
	for _, b := range r.s.batches {
		if filter.ProductID != "" && b.ProductID != filter.ProductID {
			continue
		}
		if filter.PurchaseOrderID != "" && b.PurchaseOrderID != filter.PurchaseOrderID {
			continue
		}
		b := b
		list = append(list, &b)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ExpiryDate.Equal(list[j].ExpiryDate) {
			return list[i].ExpiryDate.Before(list[j].ExpiryDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// UpdateQuantity corrige la cantidad; ids desconocidos se ignoran.
func (r *BatchRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil
	}
	b.Quantity = quantity
	r.s.batches[id] = b
	return nil
}

// CountByPurchaseOrder lotes recibidos de la orden.
func (r *BatchRepo) CountByPurchaseOrder(_ context.Context, purchaseOrderID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, b := range r.s.batches {
		if b.PurchaseOrderID == purchaseOrderID {
			n++
		}
	}
	return n, nil
}

// CountByProduct lotes del producto.
func (r *BatchRepo) CountByProduct(_ context.Context, productID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, b := range r.s.batches {
		if b.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// Delete elimina el lote si existe.
func (r *BatchRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.batches, id)
	return nil
}
