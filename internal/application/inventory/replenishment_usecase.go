package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

const productPageSize = 200

// severity orden de urgencia de los estados que requieren reposición.
var severity = map[policy.StockStatus]int{
	policy.StockZero:     0,
	policy.StockCritical: 1,
	policy.StockLow:      2,
}

// ReplenishmentUseCase genera la lista de reposición a partir del stock vigente:
// suma de los lotes no vencidos de cada producto clasificada con sus umbrales.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	now         func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	now func() time.Time,
) *ReplenishmentUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReplenishmentUseCase{productRepo: productRepo, batchRepo: batchRepo, now: now}
}

// GenerateReplenishmentList devuelve los productos en ZERO, CRITICAL o LOW con la cantidad
// sugerida de pedido. ref nil usa el día actual.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, ref *time.Time) (*dto.ReplenishmentResponse, error) {
	today := policy.DateOnly(uc.now())
	if ref != nil {
		today = policy.DateOnly(*ref)
	}

	// 1. Stock vigente por producto
	batches, err := uc.batchRepo.List(ctx, repository.BatchFilter{})
	if err != nil {
		return nil, err
	}
	stock := make(map[string]int)
	for _, b := range policy.ValidBatches(batches, today) {
		stock[b.ProductID] += b.Quantity
	}

	// 2. Clasificar todo el catálogo
	suggestions := []dto.ReplenishmentSuggestion{}
	for offset := 0; ; offset += productPageSize {
		products, err := uc.productRepo.List(ctx, productPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			current := stock[p.ID]
			status := policy.ClassifyStock(p, &current)
			if _, ok := severity[status]; !ok {
				continue
			}
			ideal := idealStock(p)
			if ideal == 0 {
				// sin umbrales no hay nivel objetivo
				continue
			}
			suggested := ideal - current
			if suggested < 0 {
				suggested = 0
			}
			suggestions = append(suggestions, dto.ReplenishmentSuggestion{
				ProductID:         p.ID,
				ProductName:       p.Name,
				Status:            string(status),
				CurrentStock:      current,
				ReorderPoint:      p.ReorderPoint,
				StockMin:          p.StockMin,
				IdealStock:        ideal,
				SuggestedOrderQty: suggested,
			})
		}
		if len(products) < productPageSize {
			break
		}
	}

	// 3. Más urgente primero; a igual estado, mayor cantidad a pedir.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		sa, sb := severity[policy.StockStatus(a.Status)], severity[policy.StockStatus(b.Status)]
		if sa != sb {
			return sa < sb
		}
		if a.SuggestedOrderQty != b.SuggestedOrderQty {
			return a.SuggestedOrderQty > b.SuggestedOrderQty
		}
		return a.ProductName < b.ProductName
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}

	return &dto.ReplenishmentResponse{
		ReferenceDate: today.Format(dto.DateLayout),
		Items:         suggestions,
	}, nil
}

// idealStock nivel objetivo tras reponer: el máximo si está definido; si no, 1.5 veces el
// mayor umbral inferior (punto de reorden o mínimo), redondeado hacia arriba.
func idealStock(p *entity.Product) int {
	if p.StockMax != nil {
		return *p.StockMax
	}
	floor := 0
	if p.ReorderPoint != nil {
		floor = *p.ReorderPoint
	}
	if p.StockMin != nil && *p.StockMin > floor {
		floor = *p.StockMin
	}
	return (floor*3 + 1) / 2
}
