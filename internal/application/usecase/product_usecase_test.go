package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

func validProduct(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          name,
		Description:   "Descripción de " + name,
		UnitMeasureID: "und",
		StockMax:      intPtr(100),
		StockMin:      intPtr(20),
		ReorderPoint:  intPtr(10),
	}
}

func TestProductUseCase_CreateYGet(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	created, err := f.products.Create(ctx, validProduct("Leche entera"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := f.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", got.Name)
	assert.Equal(t, 100, *got.StockMax)
}

func TestProductUseCase_CreateValidaciones(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	cases := map[string]func(*dto.CreateProductRequest){
		"sin nombre":          func(r *dto.CreateProductRequest) { r.Name = "  " },
		"sin unidad":          func(r *dto.CreateProductRequest) { r.UnitMeasureID = "" },
		"stock_max cero":      func(r *dto.CreateProductRequest) { r.StockMax = intPtr(0) },
		"stock_min negativo":  func(r *dto.CreateProductRequest) { r.StockMin = intPtr(-1) },
		"reorder negativo":    func(r *dto.CreateProductRequest) { r.ReorderPoint = intPtr(-5) },
		"temperatura 2 dec":   func(r *dto.CreateProductRequest) { v := decimal.RequireFromString("4.25"); r.IdealTemperature = &v },
		"temperatura rango":   func(r *dto.CreateProductRequest) { v := decimal.RequireFromString("100"); r.IdealTemperature = &v },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validProduct("Producto")
			mutate(&req)
			_, err := f.products.Create(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUseCase_UmbralesSinOrdenSeAceptan(t *testing.T) {
	f := newFixture(false)
	req := validProduct("Harina")
	req.StockMax, req.StockMin, req.ReorderPoint = intPtr(5), intPtr(50), intPtr(80)

	_, err := f.products.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestProductUseCase_CodigoBarrasDuplicado(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	a := validProduct("A")
	a.Barcode = strPtr("7701234")
	_, err := f.products.Create(ctx, a)
	require.NoError(t, err)

	b := validProduct("B")
	b.Barcode = strPtr("7701234")
	_, err = f.products.Create(ctx, b)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_CodigoBarrasVacioEsAusente(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	a := validProduct("A")
	a.Barcode = strPtr("")
	first, err := f.products.Create(ctx, a)
	require.NoError(t, err)
	assert.Nil(t, first.Barcode)

	b := validProduct("B")
	b.Barcode = strPtr("   ")
	second, err := f.products.Create(ctx, b)
	require.NoError(t, err)
	assert.Nil(t, second.Barcode)

	c, err := f.products.Create(ctx, validProduct("C"))
	require.NoError(t, err)
	updated, err := f.products.Update(ctx, c.ID, dto.UpdateProductRequest{Barcode: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.Barcode)
}

func TestProductUseCase_UpdateBorraCodigoBarras(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	req := validProduct("Avena")
	req.Barcode = strPtr(" 7709999 ")
	created, err := f.products.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created.Barcode)
	assert.Equal(t, "7709999", *created.Barcode)

	// mismo código: no es duplicado de sí mismo
	_, err = f.products.Update(ctx, created.ID, dto.UpdateProductRequest{Barcode: strPtr("7709999")})
	require.NoError(t, err)

	cleared, err := f.products.Update(ctx, created.ID, dto.UpdateProductRequest{Barcode: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Barcode)

	// liberado, otro producto puede usarlo
	other := validProduct("Otro")
	other.Barcode = strPtr("7709999")
	_, err = f.products.Create(ctx, other)
	assert.NoError(t, err)
}

func TestProductUseCase_UpdateConservaCamposNil(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	created, err := f.products.Create(ctx, validProduct("Arroz"))
	require.NoError(t, err)

	updated, err := f.products.Update(ctx, created.ID, dto.UpdateProductRequest{StockMin: intPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, "Arroz", updated.Name)
	assert.Equal(t, 30, *updated.StockMin)
	assert.Equal(t, 100, *updated.StockMax)

	_, err = f.products.Update(ctx, "no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Search(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	for _, n := range []string{"Queso campesino", "Yogur", "Queso doble crema"} {
		_, err := f.products.Create(ctx, validProduct(n))
		require.NoError(t, err)
	}

	res, err := f.products.Search(ctx, "QUESO", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 20, res.Page.Limit)

	_, err = f.products.Search(ctx, " ", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_StockStatus(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	p, err := f.products.Create(ctx, validProduct("Aceite"))
	require.NoError(t, err)

	cases := []struct {
		quantity *int
		want     policy.StockStatus
	}{
		{nil, policy.StockUndefined},
		{intPtr(0), policy.StockZero},
		{intPtr(10), policy.StockCritical},
		{intPtr(20), policy.StockLow},
		{intPtr(100), policy.StockExcess},
		{intPtr(50), policy.StockNormal},
	}
	for _, tc := range cases {
		res, err := f.products.StockStatus(ctx, p.ID, tc.quantity)
		require.NoError(t, err)
		assert.Equal(t, string(tc.want), res.Status)
	}

	_, err = f.products.StockStatus(ctx, p.ID, intPtr(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.products.StockStatus(ctx, "no-existe", intPtr(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_StockStatusDesdeLotesIgnoraVencidos(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	p, err := f.products.Create(ctx, validProduct("Mantequilla"))
	require.NoError(t, err)
	order, err := f.orders.Create(ctx, dto.CreatePurchaseOrderRequest{Value: decimal.NewFromInt(100), ExpectedDelivery: "2024-03-01"})
	require.NoError(t, err)

	for _, b := range []struct {
		expiry string
		qty    int
	}{{"2024-03-14", 500}, {"2024-03-15", 8}, {"2024-06-01", 7}} {
		_, err := f.batches.Create(ctx, dto.CreateBatchRequest{
			PurchaseOrderID: order.ID, ProductID: p.ID,
			ManufactureDate: "2024-01-01", ExpiryDate: b.expiry, Quantity: b.qty,
		})
		require.NoError(t, err)
	}

	res, err := f.products.StockStatusFromBatches(ctx, p.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, *res.Quantity)
	assert.Equal(t, string(policy.StockLow), res.Status)

	// un día antes el lote de 500 todavía es válido
	res, err = f.products.StockStatusFromBatches(ctx, p.ID, day("2024-03-14"))
	require.NoError(t, err)
	assert.Equal(t, 515, *res.Quantity)
	assert.Equal(t, string(policy.StockExcess), res.Status)
}
