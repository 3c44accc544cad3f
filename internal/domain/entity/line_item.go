package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de la factura en edición (producto, cantidad, precio).
// Total se calcula al construir y no se modifica: para cambiar una línea se elimina y se agrega de nuevo.
type LineItem struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
