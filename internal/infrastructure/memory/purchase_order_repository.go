package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo órdenes de compra en memoria.
type PurchaseOrderRepo struct {
	s *Store
}

// Create guarda una copia de la orden.
func (r *PurchaseOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[order.ID] = *order
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// Update reemplaza la orden si existe.
func (r *PurchaseOrderRepo) Update(_ context.Context, order *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; ok {
		r.s.orders[order.ID] = *order
	}
	return nil
}

// List aplica estado, rango de entrega y rango de valor; paginado.
func (r *PurchaseOrderRepo) List(_ context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	list := r.collect(func(o entity.PurchaseOrder) bool {
		d := policy.DateOnly(o.ExpectedDelivery)
		switch {
		case f.Status != nil && o.Status != *f.Status:
			return false
		case f.DeliveryFrom != nil && d.Before(policy.DateOnly(*f.DeliveryFrom)):
			return false
		case f.DeliveryTo != nil && d.After(policy.DateOnly(*f.DeliveryTo)):
			return false
		case f.MinValue != nil && o.Value.LessThan(*f.MinValue):
			return false
		case f.MaxValue != nil && o.Value.GreaterThan(*f.MaxValue):
			return false
		}
		return true
	})
	return paginate(list, f.Limit, f.Offset), nil
}

// ListOpenDeliveredBefore órdenes no terminales con entrega anterior a date.
func (r *PurchaseOrderRepo) ListOpenDeliveredBefore(_ context.Context, date time.Time) ([]*entity.PurchaseOrder, error) {
	limit := policy.DateOnly(date)
	return r.collect(func(o entity.PurchaseOrder) bool {
		return !policy.IsTerminal(o.Status) && policy.DateOnly(o.ExpectedDelivery).Before(limit)
	}), nil
}

// Delete elimina la orden si existe.
func (r *PurchaseOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

// collect ordena por entrega esperada ascendente.
func (r *PurchaseOrderRepo) collect(keep func(entity.PurchaseOrder) bool) []*entity.PurchaseOrder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.PurchaseOrder, 0)
	for _, o := range r.s.orders {
		if keep(o) {
			o := o
			list = append(list, &o)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ExpectedDelivery.Equal(list[j].ExpectedDelivery) {
			return list[i].ExpectedDelivery.Before(list[j].ExpectedDelivery)
		}
		return list[i].ID < list[j].ID
	})
	return list
}
