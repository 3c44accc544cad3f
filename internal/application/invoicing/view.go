package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/domain/invoice"
)

// RowView fila de la tabla de productos. Index es la posición actual en el ledger
// y es lo que se usa para pedir su eliminación.
type RowView struct {
	Index     int
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
}

// View estado visible completo de la factura: cabecera, filas y resumen ya formateados.
type View struct {
	Header     entity.InvoiceHeader
	Rows       []RowView
	TaxRate    string
	Subtotal   string
	Tax        string
	GrandTotal string
}

// BuildView regenera la vista desde cero a partir de las líneas y el resumen.
func BuildView(header entity.InvoiceHeader, items []entity.LineItem, summary invoice.Summary, taxRate decimal.Decimal) View {
	rows := make([]RowView, 0, len(items))
	for i, it := range items {
		rows = append(rows, RowView{
			Index:     i,
			Name:      it.Name,
			Quantity:  FormatQuantity(it.Quantity),
			UnitPrice: FormatCurrency(it.UnitPrice),
			Total:     FormatCurrency(it.Total),
		})
	}
	return View{
		Header:     header,
		Rows:       rows,
		TaxRate:    FormatRate(taxRate),
		Subtotal:   FormatCurrency(summary.Subtotal),
		Tax:        FormatCurrency(summary.Tax),
		GrandTotal: FormatCurrency(summary.GrandTotal),
	}
}
