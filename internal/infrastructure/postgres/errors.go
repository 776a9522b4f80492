package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Compras-api/internal/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translate convierte violaciones de restricciones en errores de dominio; el resto se devuelve tal cual.
func translate(err error) error {
	switch pgCode(err) {
	case uniqueViolation:
		return domain.ErrDuplicate
	case foreignKeyViolation:
		return domain.ErrConflict
	case checkViolation:
		return domain.ErrInvalidInput
	}
	return err
}
