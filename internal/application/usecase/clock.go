package usecase

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

// Clock fuente de la fecha actual. Se inyecta para que las reglas de vencimiento y atraso
// reciban "hoy" como parámetro explícito.
type Clock func() time.Time

// SystemClock usa el reloj del servidor.
func SystemClock() time.Time { return time.Now() }

// referenceDate devuelve ref si viene informado; si no, el día actual del reloj.
func referenceDate(clock Clock, ref *time.Time) time.Time {
	if ref != nil {
		return policy.DateOnly(*ref)
	}
	if clock == nil {
		clock = SystemClock
	}
	return policy.DateOnly(clock())
}
