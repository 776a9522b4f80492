package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
)

func intPtr(v int) *int { return &v }

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	products := []*entity.Product{
		{ID: "p-a", Name: "Arroz", StockMax: intPtr(100), StockMin: intPtr(20), ReorderPoint: intPtr(10)},
		{ID: "p-b", Name: "Fríjol", StockMin: intPtr(20), ReorderPoint: intPtr(8)},
		{ID: "p-c", Name: "Café", StockMax: intPtr(50)},
		{ID: "p-d", Name: "Dulce", StockMax: intPtr(50), StockMin: intPtr(5)},
		{ID: "p-e", Name: "Sin umbrales"},
	}
	for _, p := range products {
		require.NoError(t, store.Products().Create(ctx, p))
	}
	batches := []*entity.Batch{
		{ID: "b-1", ProductID: "p-a", PurchaseOrderID: "po-1", ExpiryDate: date("2024-04-30"), Quantity: 5},
		{ID: "b-2", ProductID: "p-a", PurchaseOrderID: "po-1", ExpiryDate: date("2024-03-01"), Quantity: 50},
		{ID: "b-3", ProductID: "p-b", PurchaseOrderID: "po-1", ExpiryDate: date("2024-03-15"), Quantity: 15},
		{ID: "b-4", ProductID: "p-d", PurchaseOrderID: "po-2", ExpiryDate: date("2024-06-01"), Quantity: 30},
	}
	for _, b := range batches {
		require.NoError(t, store.Batches().Create(ctx, b))
	}
	return store
}

func TestReplenishment_PrioridadYCantidades(t *testing.T) {
	store := seed(t)
	uc := NewReplenishmentUseCase(store.Products(), store.Batches(), func() time.Time {
		return time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	})

	out, err := uc.GenerateReplenishmentList(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", out.ReferenceDate)
	require.Len(t, out.Items, 3)

	assert.Equal(t, "p-c", out.Items[0].ProductID)
	assert.Equal(t, "ZERO", out.Items[0].Status)
	assert.Equal(t, 50, out.Items[0].SuggestedOrderQty)

	assert.Equal(t, "p-a", out.Items[1].ProductID)
	assert.Equal(t, "CRITICAL", out.Items[1].Status)
	assert.Equal(t, 5, out.Items[1].CurrentStock, "el lote vencido no cuenta")
	assert.Equal(t, 95, out.Items[1].SuggestedOrderQty)

	assert.Equal(t, "p-b", out.Items[2].ProductID)
	assert.Equal(t, "LOW", out.Items[2].Status)
	assert.Equal(t, 30, out.Items[2].IdealStock)
	assert.Equal(t, 15, out.Items[2].SuggestedOrderQty)

	for i, item := range out.Items {
		assert.Equal(t, i+1, item.Priority)
	}
}

func TestReplenishment_FechaDeReferencia(t *testing.T) {
	store := seed(t)
	uc := NewReplenishmentUseCase(store.Products(), store.Batches(), nil)

	// el 2024-03-16 vence el lote de p-b y pasa a ZERO
	ref := date("2024-03-16")
	out, err := uc.GenerateReplenishmentList(context.Background(), &ref)
	require.NoError(t, err)

	byID := map[string]string{}
	for _, item := range out.Items {
		byID[item.ProductID] = item.Status
	}
	assert.Equal(t, "ZERO", byID["p-b"])
	assert.NotContains(t, byID, "p-d")
	assert.NotContains(t, byID, "p-e")
}

func TestIdealStock(t *testing.T) {
	assert.Equal(t, 40, idealStock(&entity.Product{StockMax: intPtr(40), StockMin: intPtr(90)}))
	assert.Equal(t, 15, idealStock(&entity.Product{ReorderPoint: intPtr(10)}))
	assert.Equal(t, 11, idealStock(&entity.Product{ReorderPoint: intPtr(3), StockMin: intPtr(7)}))
	assert.Equal(t, 0, idealStock(&entity.Product{}))
}
