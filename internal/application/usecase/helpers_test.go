package usecase_test

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/infrastructure/memory"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// fixedToday fecha de referencia de todos los casos de uso bajo prueba.
var fixedToday = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedToday }

type fixture struct {
	store      *memory.Store
	products   *usecase.ProductUseCase
	batches    *usecase.BatchUseCase
	orders     *usecase.PurchaseOrderUseCase
	accounting *usecase.AccountingUseCase
}

func newFixture(strict bool) *fixture {
	store := memory.NewStore()
	return &fixture{
		store:      store,
		products:   usecase.NewProductUseCase(store.Products(), store.Batches(), fixedClock),
		batches:    usecase.NewBatchUseCase(store.Batches(), store.Products(), store.PurchaseOrders(), fixedClock),
		orders:     usecase.NewPurchaseOrderUseCase(store.PurchaseOrders(), fixedClock, strict, logger.Nop().Component("purchase_orders")),
		accounting: usecase.NewAccountingUseCase(store.Movements(), store.PurchaseOrders()),
	}
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}
