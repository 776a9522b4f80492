package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// LedgerSummary totales de un conjunto de movimientos de una cuenta.
// Balance = Debits - Credits.
type LedgerSummary struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// Balance saldo = débitos - créditos. Colección vacía => 0.
func Balance(movements []*entity.AccountingMovement) decimal.Decimal {
	return Summarize(movements).Balance
}

// BalanceInWindow saldo de los movimientos con fecha de registro en [start, end] (días calendario, inclusivo).
func BalanceInWindow(movements []*entity.AccountingMovement, start, end time.Time) decimal.Decimal {
	return Summarize(InWindow(movements, start, end)).Balance
}

// Summarize agrega débitos y créditos. Tipos desconocidos no aportan al saldo ni al conteo.
func Summarize(movements []*entity.AccountingMovement) LedgerSummary {
	s := LedgerSummary{Debits: decimal.Zero, Credits: decimal.Zero}
	for _, m := range movements {
		if m == nil {
			continue
		}
		switch m.Type {
		case entity.MovementDebit:
			s.Debits = s.Debits.Add(m.Amount)
		case entity.MovementCredit:
			s.Credits = s.Credits.Add(m.Amount)
		default:
			continue
		}
		s.Count++
	}
	s.Balance = s.Debits.Sub(s.Credits)
	return s
}

// InWindow filtra por fecha de registro dentro de [start, end], ambos incluidos.
func InWindow(movements []*entity.AccountingMovement, start, end time.Time) []*entity.AccountingMovement {
	from, to := DateOnly(start), DateOnly(end)
	out := make([]*entity.AccountingMovement, 0, len(movements))
	for _, m := range movements {
		if m == nil {
			continue
		}
		d := DateOnly(m.PostingDate)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, m)
	}
	return out
}
