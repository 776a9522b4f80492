package policy

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// transitions grafo de transiciones permitidas. Los estados terminales no tienen salidas.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:  {entity.OrderStatusApproved, entity.OrderStatusCancelled},
	entity.OrderStatusApproved: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:  {entity.OrderStatusReceived, entity.OrderStatusCancelled},
}

// IsTerminal indica si la orden ya fue recibida o cancelada.
func IsTerminal(s entity.OrderStatus) bool {
	return s == entity.OrderStatusReceived || s == entity.OrderStatusCancelled
}

// IsOverdue es verdadero si la orden no está en estado terminal y la entrega esperada es anterior a today.
func IsOverdue(order *entity.PurchaseOrder, today time.Time) bool {
	if IsTerminal(order.Status) {
		return false
	}
	return DateOnly(order.ExpectedDelivery).Before(DateOnly(today))
}

// CanTransition indica si el cambio de estado from -> to respeta el grafo.
// Reescribir el mismo estado siempre es válido; estados desconocidos nunca lo son.
func CanTransition(from, to entity.OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses devuelve los estados alcanzables desde s (vacío para terminales).
func NextStatuses(s entity.OrderStatus) []entity.OrderStatus {
	next := transitions[s]
	out := make([]entity.OrderStatus, len(next))
	copy(out, next)
	return out
}

// OverdueOrders filtra las órdenes atrasadas respecto a today, conservando el orden de entrada.
func OverdueOrders(orders []*entity.PurchaseOrder, today time.Time) []*entity.PurchaseOrder {
	out := make([]*entity.PurchaseOrder, 0)
	for _, o := range orders {
		if o != nil && IsOverdue(o, today) {
			out = append(out, o)
		}
	}
	return out
}
