package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

func TestFormatMoney(t *testing.T) {
	g := NewOrderSheetGenerator()

	assert.Equal(t, "1.234.567,50", g.formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "0,00", g.formatMoney(decimal.Zero))
	assert.Equal(t, "-12,14", g.formatMoney(decimal.RequireFromString("-12.14")))
}

func TestExpiryNote(t *testing.T) {
	assert.Equal(t, "VENCIDO", expiryNote(procurement.OrderSheetLine{Expired: true}))
	assert.Equal(t, "POR VENCER", expiryNote(procurement.OrderSheetLine{NearExpiry: true}))
	assert.Empty(t, expiryNote(procurement.OrderSheetLine{}))
}

func TestGenerateOrderSheet(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	sheet := procurement.OrderSheet{
		Order: &entity.PurchaseOrder{
			ID: "4b1c9a52-0d0e-4d4f-9d0b-1f3c7d1c2a10", Value: decimal.RequireFromString("2500000"),
			ExpectedDelivery: day.AddDate(0, 0, -3), Status: entity.OrderStatusShipped,
		},
		ReferenceDate: day,
		Overdue:       true,
		Lines: []procurement.OrderSheetLine{{
			Batch:       &entity.Batch{ID: "lote-0001-abc", ManufactureDate: day.AddDate(0, -2, 0), ExpiryDate: day, Quantity: 12},
			ProductName: "Yogur natural",
			NearExpiry:  true,
		}},
		Ledger: policy.LedgerSummary{Debits: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), Count: 1},
	}

	out, err := NewOrderSheetGenerator().GenerateOrderSheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewOrderSheetGenerator().GenerateOrderSheet(context.Background(), procurement.OrderSheet{})
	assert.Error(t, err)
}
