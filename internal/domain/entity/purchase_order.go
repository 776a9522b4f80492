package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de compra (conjunto cerrado).
type OrderStatus string

// Estados de la orden de compra.
const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusReceived  OrderStatus = "RECEIVED"  // terminal: mercancía recibida
	OrderStatusCancelled OrderStatus = "CANCELLED" // terminal
)

// OrderStatuses devuelve todos los estados válidos.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusApproved,
		OrderStatusShipped,
		OrderStatusReceived,
		OrderStatusCancelled,
	}
}

// Valid indica si s pertenece al conjunto cerrado de estados.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// PurchaseOrder representa una orden de compra. Puede recibir mercancía en varios lotes.
type PurchaseOrder struct {
	ID               string
	Value            decimal.Decimal
	ExpectedDelivery time.Time
	Status           OrderStatus
	CreatedAt        time.Time
}
