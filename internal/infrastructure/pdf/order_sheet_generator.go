// Package pdf genera la hoja imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° de orden + estado │ Valor + entrega esperada    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Lote | Producto | Fabricación | Vence | Cant | Nota │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTABILIDAD: Débitos / Créditos / Saldo                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Compras-api/internal/application/procurement"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const dateLayout = "02/01/2006"

var _ procurement.OrderSheetGenerator = (*OrderSheetGenerator)(nil)

// OrderSheetGenerator implementa procurement.OrderSheetGenerator con Maroto v2.
type OrderSheetGenerator struct {
	printer *message.Printer
}

// NewOrderSheetGenerator construye el generador; los montos se formatean con la convención es-CO.
func NewOrderSheetGenerator() *OrderSheetGenerator {
	return &OrderSheetGenerator{printer: message.NewPrinter(language.MustParse("es-CO"))}
}

// GenerateOrderSheet genera el PDF y devuelve sus bytes.
func (g *OrderSheetGenerator) GenerateOrderSheet(_ context.Context, sheet procurement.OrderSheet) ([]byte, error) {
	if sheet.Order == nil {
		return nil, fmt.Errorf("pdf: hoja sin orden")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+sheet.Order.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(sheet.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin lotes recibidos.", props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	for _, l := range sheet.Lines {
		m.AddRows(batchRow(l))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.ledgerRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *OrderSheetGenerator) headerRow(sheet procurement.OrderSheet) core.Row {
	o := sheet.Order
	status := string(o.Status)
	statusColor := colorGray
	if sheet.Overdue {
		status += " · ATRASADA"
		statusColor = colorAlert
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New("ORDEN DE COMPRA", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(o.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New(status, props.Text{Style: fontstyle.Bold, Size: 9, Top: 14, Color: statusColor}),
		),
		col.New(5).Add(
			text.New("Valor: $"+g.formatMoney(o.Value), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Entrega esperada: "+o.ExpectedDelivery.Format(dateLayout), props.Text{Size: 8, Align: align.Right, Top: 9}),
			text.New("Evaluada al: "+sheet.ReferenceDate.Format(dateLayout), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Lote", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Fabricación", 2, align.Center),
		h("Vence", 2, align.Center),
		h("Cant.", 1, align.Right),
		h("Nota", 1, align.Center),
	)
}

func batchRow(l procurement.OrderSheetLine) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(shortID(l.Batch.ID), 2, align.Left),
		cell(l.ProductName, 4, align.Left),
		cell(l.Batch.ManufactureDate.Format(dateLayout), 2, align.Center),
		cell(l.Batch.ExpiryDate.Format(dateLayout), 2, align.Center),
		cell(fmt.Sprintf("%d", l.Batch.Quantity), 1, align.Right),
		col.New(1).Add(text.New(expiryNote(l), props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorAlert})),
	)
}

func (g *OrderSheetGenerator) ledgerRow(sheet procurement.OrderSheet) core.Row {
	return row.New(22).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Asientos contables vinculados: %d", sheet.Ledger.Count),
			props.Text{Size: 8, Top: 1, Color: colorGray},
		)),
		col.New(3).Add(
			text.New("Débitos:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 0}),
			text.New("Créditos:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 6}),
			text.New("SALDO:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 12, Color: colorPrimary}),
		),
		col.New(3).Add(
			text.New("$"+g.formatMoney(sheet.Ledger.Debits), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New("$"+g.formatMoney(sheet.Ledger.Credits), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6}),
			text.New("$"+g.formatMoney(sheet.Ledger.Balance), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary}),
		),
	)
}

// formatMoney separa miles con el printer de la localidad y usa coma decimal con dos cifras.
func (g *OrderSheetGenerator) formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n := d.Truncate(0).IntPart()
	if len(intPart) > 18 {
		return sign + fixed
	}
	return sign + g.printer.Sprintf("%d", n) + "," + frac
}

func expiryNote(l procurement.OrderSheetLine) string {
	switch {
	case l.Expired:
		return "VENCIDO"
	case l.NearExpiry:
		return "POR VENCER"
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
