package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

var today = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func batchExpiring(id string, offsetDays int) *entity.Batch {
	return &entity.Batch{ID: id, ProductID: "p-1", ExpiryDate: today.AddDate(0, 0, offsetDays), Quantity: 10}
}

func TestBatchExpiry_Escenarios(t *testing.T) {
	yesterday := batchExpiring("b-ayer", -1)
	assert.True(t, policy.IsExpired(yesterday, today))
	assert.False(t, policy.IsNearExpiry(yesterday, today))

	limit := batchExpiring("b-30", 30)
	assert.False(t, policy.IsExpired(limit, today))
	assert.True(t, policy.IsNearExpiry(limit, today))

	beyond := batchExpiring("b-31", 31)
	assert.False(t, policy.IsExpired(beyond, today))
	assert.False(t, policy.IsNearExpiry(beyond, today))
}

// El día de vencimiento el lote no está vencido pero sí próximo a vencer.
func TestBatchExpiry_VenceHoy(t *testing.T) {
	b := &entity.Batch{ID: "b-hoy", ExpiryDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}
	assert.False(t, policy.IsExpired(b, today))
	assert.True(t, policy.IsNearExpiry(b, today))
}

// La hora del día no altera la comparación: solo cuenta la fecha calendario.
func TestBatchExpiry_IgnoraHora(t *testing.T) {
	b := &entity.Batch{ExpiryDate: time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)}
	lateToday := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	assert.False(t, policy.IsExpired(b, lateToday))
	assert.False(t, policy.IsExpired(b, today))
}

func TestBatchExpiry_Propiedades(t *testing.T) {
	for offset := -40; offset <= 40; offset++ {
		b := batchExpiring("b", offset)
		exp := policy.DateOnly(b.ExpiryDate)
		d := policy.DateOnly(today)
		assert.Equal(t, exp.Before(d), policy.IsExpired(b, today), "offset %d", offset)
		assert.Equal(t, !exp.Before(d) && !exp.After(d.AddDate(0, 0, 30)), policy.IsNearExpiry(b, today), "offset %d", offset)
	}
}

func TestBatchFilters_OrdenadosPorVencimiento(t *testing.T) {
	batches := []*entity.Batch{
		batchExpiring("b-60", 60),
		batchExpiring("b-menos5", -5),
		batchExpiring("b-10", 10),
		batchExpiring("b-0", 0),
		batchExpiring("b-menos20", -20),
		nil,
	}

	valid := policy.ValidBatches(batches, today)
	require.Len(t, valid, 3)
	assert.Equal(t, []string{"b-0", "b-10", "b-60"}, ids(valid))

	expired := policy.ExpiredBatches(batches, today)
	assert.Equal(t, []string{"b-menos20", "b-menos5"}, ids(expired))

	near := policy.NearExpiryBatches(batches, today)
	assert.Equal(t, []string{"b-0", "b-10"}, ids(near))

	// la colección original no se reordena
	assert.Equal(t, "b-60", batches[0].ID)
}

func TestBatchFilters_Vacio(t *testing.T) {
	assert.Empty(t, policy.ValidBatches(nil, today))
	assert.NotNil(t, policy.ExpiredBatches(nil, today))
}

func ids(batches []*entity.Batch) []string {
	out := make([]string, 0, len(batches))
	for _, b := range batches {
		out = append(out, b.ID)
	}
	return out
}
