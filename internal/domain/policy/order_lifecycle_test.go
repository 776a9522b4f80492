package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
)

func orderDue(status entity.OrderStatus, offsetDays int) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{ID: "oc-1", Status: status, ExpectedDelivery: today.AddDate(0, 0, offsetDays)}
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, policy.IsOverdue(orderDue(entity.OrderStatusPending, -1), today))
	assert.True(t, policy.IsOverdue(orderDue(entity.OrderStatusShipped, -10), today))
	assert.False(t, policy.IsOverdue(orderDue(entity.OrderStatusApproved, 0), today), "entrega hoy no está atrasada")
	assert.False(t, policy.IsOverdue(orderDue(entity.OrderStatusPending, 3), today))
	assert.False(t, policy.IsOverdue(orderDue(entity.OrderStatusReceived, -10), today), "terminal")
	assert.False(t, policy.IsOverdue(orderDue(entity.OrderStatusCancelled, -10), today), "terminal")
}

func TestOverdueOrders(t *testing.T) {
	orders := []*entity.PurchaseOrder{
		orderDue(entity.OrderStatusPending, -2),
		orderDue(entity.OrderStatusReceived, -2),
		orderDue(entity.OrderStatusApproved, 5),
		nil,
	}
	got := policy.OverdueOrders(orders, today)
	assert.Len(t, got, 1)
	assert.Equal(t, entity.OrderStatusPending, got[0].Status)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusApproved, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusReceived, false},
		{entity.OrderStatusApproved, entity.OrderStatusShipped, true},
		{entity.OrderStatusShipped, entity.OrderStatusReceived, true},
		{entity.OrderStatusReceived, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusApproved, false},
		{entity.OrderStatusReceived, entity.OrderStatusReceived, true},
		{entity.OrderStatus("BORRADOR"), entity.OrderStatusApproved, false},
		{entity.OrderStatusPending, entity.OrderStatus(""), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]entity.OrderStatus{entity.OrderStatusShipped, entity.OrderStatusCancelled},
		policy.NextStatuses(entity.OrderStatusApproved))
	assert.Empty(t, policy.NextStatuses(entity.OrderStatusReceived))
	assert.True(t, policy.IsTerminal(entity.OrderStatusCancelled))
	assert.False(t, policy.IsTerminal(entity.OrderStatusShipped))
}
