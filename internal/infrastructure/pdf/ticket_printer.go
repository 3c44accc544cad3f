// Package pdf genera el ticket imprimible de la factura en edición.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EMPRESA + vendedor          │  N° Factura + Fecha          │
//	│  CLIENTE: Nombre + identificación                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                            │
//	│  PIE: QR de control + fecha de impresión                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/facturacion/internal/application/invoicing"
	"github.com/jhoicas/facturacion/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// TicketPrinter implementa invoicing.TicketPrinter usando Maroto v2.
type TicketPrinter struct{}

// NewTicketPrinter construye el generador.
func NewTicketPrinter() *TicketPrinter { return &TicketPrinter{} }

var _ invoicing.TicketPrinter = (*TicketPrinter)(nil)

// PrintTicket genera el PDF de la vista y devuelve sus bytes.
func (p *TicketPrinter) PrintTicket(ctx context.Context, v invoicing.View, printedAt time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", v.Header.Number), true).
		WithAuthor(nonEmpty(v.Header.Company, "Facturación"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(v.Header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(v.Header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(v.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(v))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(v, printedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(h entity.InvoiceHeader) core.Row {
	seller := nonEmpty(h.SellerName, "—")
	if h.SellerRole != "" {
		seller += " (" + h.SellerRole + ")"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(h.Company, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vendedor: "+seller, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", h.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+h.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(h entity.InvoiceHeader) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(h.CustomerName, "Consumidor final"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Identificación: "+nonEmpty(h.CustomerTaxID, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(rows []invoicing.RowView) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Quantity, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(r.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.UnitPrice, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.Total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(v invoicing.View) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
		})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA ("+v.TaxRate+"):", 7),
			grand("TOTAL:", 13),
		),
		col.New(3).Add(
			value(v.Subtotal, 1),
			value(v.Tax, 7),
			grand(v.GrandTotal, 13),
		),
	)
}

// footerRow QR con número y total para conciliar el ticket impreso.
func footerRow(v invoicing.View, printedAt time.Time) core.Row {
	qr := fmt.Sprintf("FACTURA=%d;FECHA=%s;TOTAL=%s",
		v.Header.Number, v.Header.Date.Format("2006-01-02"), v.GrandTotal)
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Gracias por su compra.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Impreso: "+printedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
