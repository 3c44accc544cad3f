package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion/internal/domain/entity"
)

// DefaultTaxRateText tarifa de IVA por defecto (15%), en la forma en que se configura.
const DefaultTaxRateText = "0.15"

// DefaultTaxRate tarifa de IVA por defecto como decimal.
func DefaultTaxRate() decimal.Decimal {
	return decimal.RequireFromString(DefaultTaxRateText)
}

// Summary totales derivados de la factura. No se almacena: siempre se recalcula.
type Summary struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// Compute calcula subtotal, IVA y total (servicio de dominio puro).
//
//	Subtotal   = Σ item.Total
//	Tax        = Subtotal * taxRate
//	GrandTotal = Subtotal + Tax
func Compute(items []entity.LineItem, taxRate decimal.Decimal) Summary {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	tax := subtotal.Mul(taxRate)
	return Summary{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// ComputeLedger atajo de Compute sobre el estado actual del ledger.
func ComputeLedger(l *Ledger, taxRate decimal.Decimal) Summary {
	return Compute(l.Items(), taxRate)
}
