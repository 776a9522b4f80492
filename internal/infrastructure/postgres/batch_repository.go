package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, purchase_order_id, product_id, manufacture_date, expiry_date, quantity, created_at`

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote; una orden o producto inexistente viola la llave foránea (domain.ErrConflict).
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	query := `INSERT INTO batches (` + batchColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.PurchaseOrderID, b.ProductID, b.ManufactureDate, b.ExpiryDate, b.Quantity, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", translate(err))
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	row := r.q.QueryRow(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = $1`, id)
	b, err := scanBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// List lotes filtrados por producto y/o orden, por vencimiento ascendente.
func (r *BatchRepo) List(ctx context.Context, filter repository.BatchFilter) ([]*entity.Batch, error) {
	qb := psql.Select(batchColumns).From("batches").OrderBy("expiry_date ASC", "id ASC")
	if filter.ProductID != "" {
		qb = qb.Where(squirrel.Eq{"product_id": filter.ProductID})
	}
	if filter.PurchaseOrderID != "" {
		qb = qb.Where(squirrel.Eq{"purchase_order_id": filter.PurchaseOrderID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Batch, 0)
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// UpdateQuantity corrige la cantidad del lote.
func (r *BatchRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if _, err := r.q.Exec(ctx, `UPDATE batches SET quantity = $2 WHERE id = $1`, id, quantity); err != nil {
		return fmt.Errorf("update batch quantity: %w", translate(err))
	}
	return nil
}

// CountByPurchaseOrder cantidad de lotes de la orden.
func (r *BatchRepo) CountByPurchaseOrder(ctx context.Context, purchaseOrderID string) (int, error) {
	return count(ctx, r.q, "batches", squirrel.Eq{"purchase_order_id": purchaseOrderID})
}

// CountByProduct cantidad de lotes del producto.
func (r *BatchRepo) CountByProduct(ctx context.Context, productID string) (int, error) {
	return count(ctx, r.q, "batches", squirrel.Eq{"product_id": productID})
}

// Delete elimina el lote.
func (r *BatchRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	return nil
}

func scanBatch(row rowScanner) (*entity.Batch, error) {
	var b entity.Batch
	if err := row.Scan(&b.ID, &b.PurchaseOrderID, &b.ProductID, &b.ManufactureDate, &b.ExpiryDate, &b.Quantity, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func count(ctx context.Context, q Querier, table string, where squirrel.Sqlizer) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", table, err)
	}
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
