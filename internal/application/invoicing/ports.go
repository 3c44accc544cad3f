package invoicing

import (
	"context"
	"time"
)

// Renderer recibe la vista completa tras cada mutación. Debe reemplazar lo mostrado,
// nunca parchearlo.
type Renderer interface {
	Render(v View) error
}

// TicketPrinter genera la representación imprimible (PDF) de la factura actual.
type TicketPrinter interface {
	PrintTicket(ctx context.Context, v View, printedAt time.Time) ([]byte, error)
}
