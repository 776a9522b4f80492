package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

func intPtr(v int) *int { return &v }

func productWith(min, max, reorder *int) *entity.Product {
	return &entity.Product{ID: "p-1", Name: "Leche", StockMin: min, StockMax: max, ReorderPoint: reorder}
}

func TestClassifyStock_Escenarios(t *testing.T) {
	p := productWith(intPtr(10), intPtr(100), intPtr(5))

	cases := []struct {
		name     string
		quantity *int
		want     policy.StockStatus
	}{
		{"sin cantidad", nil, policy.StockUndefined},
		{"cero gana sobre crítico", intPtr(0), policy.StockZero},
		{"igual al punto de reorden", intPtr(5), policy.StockCritical},
		{"bajo el punto de reorden", intPtr(3), policy.StockCritical},
		{"igual al mínimo", intPtr(10), policy.StockLow},
		{"entre mínimo y máximo", intPtr(50), policy.StockNormal},
		{"igual al máximo", intPtr(100), policy.StockExcess},
		{"sobre el máximo", intPtr(150), policy.StockExcess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.ClassifyStock(p, tc.quantity))
		})
	}
}

func TestClassifyStock_UmbralesAusentesNoDisparan(t *testing.T) {
	p := productWith(nil, nil, nil)
	assert.Equal(t, policy.StockNormal, policy.ClassifyStock(p, intPtr(1)))
	assert.Equal(t, policy.StockNormal, policy.ClassifyStock(p, intPtr(1_000_000)))
	assert.Equal(t, policy.StockZero, policy.ClassifyStock(p, intPtr(0)))

	onlyMax := productWith(nil, intPtr(20), nil)
	assert.Equal(t, policy.StockExcess, policy.ClassifyStock(onlyMax, intPtr(20)))
	assert.Equal(t, policy.StockNormal, policy.ClassifyStock(onlyMax, intPtr(19)))
}

// Umbrales desordenados: la precedencia se mantiene tal cual, sin "corregir" la configuración.
func TestClassifyStock_UmbralesDesordenados(t *testing.T) {
	p := productWith(intPtr(50), intPtr(10), intPtr(80))

	assert.Equal(t, policy.StockCritical, policy.ClassifyStock(p, intPtr(60)))
	assert.Equal(t, policy.StockCritical, policy.ClassifyStock(p, intPtr(80)))
	assert.Equal(t, policy.StockExcess, policy.ClassifyStock(p, intPtr(81)))
}

// La clasificación es total: para cualquier combinación hay exactamente una categoría,
// y UNDEFINED solo cuando falta la cantidad.
func TestClassifyStock_Total(t *testing.T) {
	thresholds := []*int{nil, intPtr(0), intPtr(1), intPtr(5), intPtr(10), intPtr(100)}
	valid := map[policy.StockStatus]bool{
		policy.StockZero: true, policy.StockCritical: true, policy.StockLow: true,
		policy.StockExcess: true, policy.StockNormal: true,
	}
	for _, min := range thresholds {
		for _, max := range thresholds {
			for _, reorder := range thresholds {
				p := productWith(min, max, reorder)
				assert.Equal(t, policy.StockUndefined, policy.ClassifyStock(p, nil))
				for q := 0; q <= 120; q += 7 {
					got := policy.ClassifyStock(p, intPtr(q))
					assert.True(t, valid[got], "categoría inesperada %q", got)
				}
			}
		}
	}
}
