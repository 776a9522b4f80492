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

var _ repository.AccountingMovementRepository = (*AccountingMovementRepo)(nil)

const movementColumns = `id, entry_number, account_id, purchase_order_id, posting_date, type, amount, created_at`

// AccountingMovementRepo implementación del puerto AccountingMovementRepository sobre PostgreSQL.
type AccountingMovementRepo struct {
	q Querier
}

// NewAccountingMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountingMovementRepository(q Querier) *AccountingMovementRepo {
	return &AccountingMovementRepo{q: q}
}

// Create persiste un asiento; entry_number repetido devuelve domain.ErrDuplicate.
func (r *AccountingMovementRepo) Create(ctx context.Context, m *entity.AccountingMovement) error {
	query := `INSERT INTO accounting_movements (` + movementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.EntryNumber, m.AccountID, m.PurchaseOrderID, m.PostingDate, string(m.Type), m.Amount, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert accounting movement: %w", translate(err))
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *AccountingMovementRepo) GetByID(ctx context.Context, id string) (*entity.AccountingMovement, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEntryNumber obtiene un asiento por número de asiento.
func (r *AccountingMovementRepo) GetByEntryNumber(ctx context.Context, entryNumber int64) (*entity.AccountingMovement, error) {
	return r.getOne(ctx, squirrel.Eq{"entry_number": entryNumber})
}

// List asientos por cuenta, orden y rango de fecha de registro, en orden cronológico.
func (r *AccountingMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.AccountingMovement, error) {
	qb := psql.Select(movementColumns).From("accounting_movements").OrderBy("posting_date ASC", "entry_number ASC")
	if f.AccountID != "" {
		qb = qb.Where(squirrel.Eq{"account_id": f.AccountID})
	}
	if f.PurchaseOrderID != "" {
		qb = qb.Where(squirrel.Eq{"purchase_order_id": f.PurchaseOrderID})
	}
	if f.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"posting_date": *f.From})
	}
	if f.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"posting_date": *f.To})
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movement query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounting movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.AccountingMovement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan accounting movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CountByPurchaseOrder asientos vinculados a la orden.
func (r *AccountingMovementRepo) CountByPurchaseOrder(ctx context.Context, purchaseOrderID string) (int, error) {
	return count(ctx, r.q, "accounting_movements", squirrel.Eq{"purchase_order_id": purchaseOrderID})
}

func (r *AccountingMovementRepo) getOne(ctx context.Context, where squirrel.Eq) (*entity.AccountingMovement, error) {
	query, args, err := psql.Select(movementColumns).From("accounting_movements").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movement query: %w", err)
	}
	m, err := scanMovement(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get accounting movement: %w", err)
	}
	return m, nil
}

func scanMovement(row rowScanner) (*entity.AccountingMovement, error) {
	var (
		m   entity.AccountingMovement
		typ string
	)
	err := row.Scan(&m.ID, &m.EntryNumber, &m.AccountID, &m.PurchaseOrderID, &m.PostingDate, &typ, &m.Amount, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(typ)
	return &m, nil
}
