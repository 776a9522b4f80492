package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.AccountingMovementRepository = (*MovementRepo)(nil)

// MovementRepo asientos contables en memoria.
type MovementRepo struct {
	s *Store
}

// Create registra el asiento; ErrDuplicate si el número de asiento ya existe.
func (r *MovementRepo) Create(_ context.Context, m *entity.AccountingMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.movements {
		if existing.EntryNumber == m.EntryNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.movements[m.ID] = *m
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.AccountingMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// GetByEntryNumber busca por número de asiento.
func (r *MovementRepo) GetByEntryNumber(_ context.Context, entryNumber int64) (*entity.AccountingMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.movements {
		if m.EntryNumber == entryNumber {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

// List filtra por cuenta, orden y fechas; orden por fecha contable y número.
func (r *MovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.AccountingMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.AccountingMovement, 0)
	for _, m := range r.s.movements {
		d := policy.DateOnly(m.PostingDate)
		if f.AccountID != "" && m.AccountID != f.AccountID {
			continue
		}
		if f.PurchaseOrderID != "" && (m.PurchaseOrderID == nil || *m.PurchaseOrderID != f.PurchaseOrderID) {
			continue
		}
		if f.From != nil && d.Before(policy.DateOnly(*f.From)) {
			continue
		}
		if f.To != nil && d.After(policy.DateOnly(*f.To)) {
			continue
		}
		m := m
		list = append(list, &m)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PostingDate.Equal(list[j].PostingDate) {
			return list[i].PostingDate.Before(list[j].PostingDate)
		}
		return list[i].EntryNumber < list[j].EntryNumber
	})
	return paginate(list, f.Limit, f.Offset), nil
}

// CountByPurchaseOrder asientos vinculados a la orden.
func (r *MovementRepo) CountByPurchaseOrder(_ context.Context, purchaseOrderID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, m := range r.s.movements {
		if m.PurchaseOrderID != nil && *m.PurchaseOrderID == purchaseOrderID {
			n++
		}
	}
	return n, nil
}
