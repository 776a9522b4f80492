package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain"
)

var (
	maxTemperature = decimal.RequireFromString("99.9")
	minTemperature = decimal.RequireFromString("-99.9")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// optionalText recorta espacios; vacío equivale a no informado.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s es requerido", field)
	}
	return nil
}

// validateThresholds: stock_max >= 1, stock_min >= 0, reorder_point >= 0. El orden entre ellos no se valida.
func validateThresholds(stockMax, stockMin, reorderPoint *int) error {
	if stockMax != nil && *stockMax < 1 {
		return invalid("stock_max debe ser >= 1")
	}
	if stockMin != nil && *stockMin < 0 {
		return invalid("stock_min debe ser >= 0")
	}
	if reorderPoint != nil && *reorderPoint < 0 {
		return invalid("reorder_point debe ser >= 0")
	}
	return nil
}

// validateTemperature: un decimal como máximo, rango -99.9..99.9.
func validateTemperature(t *decimal.Decimal) error {
	if t == nil {
		return nil
	}
	if t.LessThan(minTemperature) || t.GreaterThan(maxTemperature) {
		return invalid("ideal_temperature fuera de rango (-99.9..99.9)")
	}
	if !t.Equal(t.Truncate(1)) {
		return invalid("ideal_temperature admite un solo decimal")
	}
	return nil
}

func validateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid("%s no puede ser negativo", field)
	}
	return nil
}
