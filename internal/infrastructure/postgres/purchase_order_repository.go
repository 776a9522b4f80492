package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, value, expected_delivery, status, created_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `INSERT INTO purchase_orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, o.ID, o.Value, o.ExpectedDelivery, string(o.Status), o.CreatedAt); err != nil {
		return fmt.Errorf("insert purchase order: %w", translate(err))
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	row := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// Update reemplaza valor, entrega esperada y estado.
func (r *PurchaseOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `UPDATE purchase_orders SET value = $2, expected_delivery = $3, status = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, o.ID, o.Value, o.ExpectedDelivery, string(o.Status)); err != nil {
		return fmt.Errorf("update purchase order: %w", translate(err))
	}
	return nil
}

// List aplica los filtros de igualdad y rango inclusivo.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	qb := psql.Select(orderColumns).From("purchase_orders").OrderBy("expected_delivery ASC", "id ASC")
	if f.Status != nil {
		qb = qb.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.DeliveryFrom != nil {
		qb = qb.Where(squirrel.GtOrEq{"expected_delivery": *f.DeliveryFrom})
	}
	if f.DeliveryTo != nil {
		qb = qb.Where(squirrel.LtOrEq{"expected_delivery": *f.DeliveryTo})
	}
	if f.MinValue != nil {
		qb = qb.Where(squirrel.GtOrEq{"value": *f.MinValue})
	}
	if f.MaxValue != nil {
		qb = qb.Where(squirrel.LtOrEq{"value": *f.MaxValue})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}
	return r.selectOrders(ctx, qb)
}

// ListOpenDeliveredBefore órdenes no terminales con entrega esperada anterior a date.
func (r *PurchaseOrderRepo) ListOpenDeliveredBefore(ctx context.Context, date time.Time) ([]*entity.PurchaseOrder, error) {
	qb := psql.Select(orderColumns).From("purchase_orders").
		Where(squirrel.Lt{"expected_delivery": date}).
		Where(squirrel.NotEq{"status": []string{string(entity.OrderStatusReceived), string(entity.OrderStatusCancelled)}}).
		OrderBy("expected_delivery ASC", "id ASC")
	return r.selectOrders(ctx, qb)
}

// Delete elimina la orden. Con lotes o asientos vinculados la llave foránea lo impide (domain.ErrConflict).
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase order: %w", translate(err))
	}
	return nil
}

func (r *PurchaseOrderRepo) selectOrders(ctx context.Context, qb squirrel.SelectBuilder) ([]*entity.PurchaseOrder, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build purchase order query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.PurchaseOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row rowScanner) (*entity.PurchaseOrder, error) {
	var (
		o      entity.PurchaseOrder
		status string
	)
	if err := row.Scan(&o.ID, &o.Value, &o.ExpectedDelivery, &status, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
