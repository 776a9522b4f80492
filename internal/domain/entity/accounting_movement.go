package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType naturaleza del asiento: débito o crédito.
type MovementType string

// Tipos de movimiento contable.
const (
	MovementDebit  MovementType = "D"
	MovementCredit MovementType = "C"
)

// Valid indica si t es D o C.
func (t MovementType) Valid() bool {
	return t == MovementDebit || t == MovementCredit
}

// AccountingMovement es un asiento (lançamento) contra una cuenta del plan de cuentas.
// Amount es siempre una magnitud no negativa; el signo lo aporta Type al agregar.
// Inmutable una vez registrado.
type AccountingMovement struct {
	ID              string
	EntryNumber     int64
	AccountID       string
	PurchaseOrderID *string
	PostingDate     time.Time
	Type            MovementType
	Amount          decimal.Decimal
	CreatedAt       time.Time
}
