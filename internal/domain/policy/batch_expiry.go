package policy

import (
	"sort"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// NearExpiryWindowDays ventana (en días, inclusiva) para considerar un lote próximo a vencer.
const NearExpiryWindowDays = 30

// IsExpired es verdadero si la fecha de vencimiento es anterior a today.
// Un lote que vence hoy todavía no está vencido.
func IsExpired(batch *entity.Batch, today time.Time) bool {
	return DateOnly(batch.ExpiryDate).Before(DateOnly(today))
}

// IsNearExpiry es verdadero si today <= vencimiento <= today+30 días (ambos extremos incluidos).
// Es independiente de IsExpired: en la fecha de vencimiento ambos predicados se evalúan por separado.
func IsNearExpiry(batch *entity.Batch, today time.Time) bool {
	exp := DateOnly(batch.ExpiryDate)
	from := DateOnly(today)
	to := from.AddDate(0, 0, NearExpiryWindowDays)
	return !exp.Before(from) && !exp.After(to)
}

// ValidBatches devuelve los lotes no vencidos, ordenados por vencimiento ascendente.
func ValidBatches(batches []*entity.Batch, today time.Time) []*entity.Batch {
	return filterBatches(batches, func(b *entity.Batch) bool { return !IsExpired(b, today) })
}

// ExpiredBatches devuelve los lotes vencidos, ordenados por vencimiento ascendente.
func ExpiredBatches(batches []*entity.Batch, today time.Time) []*entity.Batch {
	return filterBatches(batches, func(b *entity.Batch) bool { return IsExpired(b, today) })
}

// NearExpiryBatches devuelve los lotes dentro de la ventana de 30 días, ordenados por vencimiento ascendente.
func NearExpiryBatches(batches []*entity.Batch, today time.Time) []*entity.Batch {
	return filterBatches(batches, func(b *entity.Batch) bool { return IsNearExpiry(b, today) })
}

// filterBatches no modifica la colección de entrada.
func filterBatches(batches []*entity.Batch, keep func(*entity.Batch) bool) []*entity.Batch {
	out := make([]*entity.Batch, 0, len(batches))
	for _, b := range batches {
		if b != nil && keep(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return DateOnly(out[i].ExpiryDate).Before(DateOnly(out[j].ExpiryDate))
	})
	return out
}

// DateOnly trunca t a su día calendario (medianoche UTC del mismo año/mes/día).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
