// Package invoice contiene el núcleo de la factura en edición: el ledger de líneas
// y el cálculo de totales derivados.
package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
)

// Ledger secuencia ordenada de líneas de la factura actual.
// Lo posee una sola sesión de facturación; no es seguro para uso concurrente.
type Ledger struct {
	items []entity.LineItem
}

// NewLedger crea un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{}
}

// NewLineItem valida y construye una línea. Total = Quantity * UnitPrice.
func NewLineItem(name string, quantity, unitPrice decimal.Decimal) (entity.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.LineItem{}, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrValidation)
	}
	if !quantity.IsPositive() {
		return entity.LineItem{}, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrValidation)
	}
	if !unitPrice.IsPositive() {
		return entity.LineItem{}, fmt.Errorf("%w: el precio debe ser mayor que 0", domain.ErrValidation)
	}
	return entity.LineItem{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     quantity.Mul(unitPrice),
	}, nil
}

// Add valida la línea y la agrega al final. Si la entrada es inválida no modifica el ledger.
func (l *Ledger) Add(name string, quantity, unitPrice decimal.Decimal) (entity.LineItem, error) {
	item, err := NewLineItem(name, quantity, unitPrice)
	if err != nil {
		return entity.LineItem{}, err
	}
	l.items = append(l.items, item)
	return item, nil
}

// RemoveAt elimina la línea en la posición index.
func (l *Ledger) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (líneas: %d)", domain.ErrIndexOutOfRange, index, len(l.items))
	}
	l.items = append(l.items[:index:index], l.items[index+1:]...)
	return nil
}

// Clear vacía el ledger (al guardar la factura).
func (l *Ledger) Clear() {
	l.items = nil
}

// Items devuelve una copia de las líneas en orden; modificarla no afecta al ledger.
func (l *Ledger) Items() []entity.LineItem {
	out := make([]entity.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len número de líneas.
func (l *Ledger) Len() int { return len(l.items) }
