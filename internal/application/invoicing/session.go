// Package invoicing orquesta la factura en edición: muta el ledger, recalcula el
// resumen y vuelve a renderizar la vista completa después de cada cambio.
package invoicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/internal/domain/entity"
	"github.com/jhoicas/facturacion/internal/domain/invoice"
	"github.com/jhoicas/facturacion/pkg/logger"
)

// Campos editables de la cabecera.
const (
	FieldSeller     = "seller"
	FieldSellerRole = "role"
	FieldCustomer   = "customer"
	FieldCustomerID = "customer-id"
	FieldDate       = "date"
)

// HeaderFields nombres aceptados por SetHeaderField, en orden de presentación.
var HeaderFields = []string{FieldSeller, FieldSellerRole, FieldCustomer, FieldCustomerID, FieldDate}

// Config parámetros de la sesión de facturación.
type Config struct {
	TaxRate decimal.Decimal
	Company string           // nombre para mostrar de la sesión autenticada
	Now     func() time.Time // nil = time.Now
}

// InvoiceSession controlador de la vista de facturación. Es dueño exclusivo del ledger.
type InvoiceSession struct {
	ledger   *invoice.Ledger
	taxRate  decimal.Decimal
	header   entity.InvoiceHeader
	renderer Renderer
	printer  TicketPrinter
	log      *logger.Logger
	now      func() time.Time
}

// NewInvoiceSession crea la sesión con el ledger vacío y la factura número 1.
func NewInvoiceSession(cfg Config, renderer Renderer, printer TicketPrinter, log *logger.Logger) *InvoiceSession {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceSession{
		ledger:   invoice.NewLedger(),
		taxRate:  cfg.TaxRate,
		renderer: renderer,
		printer:  printer,
		log:      log,
		now:      now,
		header: entity.InvoiceHeader{
			Number:  1,
			Date:    truncateDay(now()),
			Company: cfg.Company,
		},
	}
}

// Límites de los números ingresados: hasta 15 dígitos enteros y 6 decimales.
const (
	maxIntegerDigits = 15
	maxDecimalPlaces = 6
)

var maxAmount = decimal.New(1, maxIntegerDigits)

// ParseProductInput convierte el texto ingresado en cantidad y precio.
// Solo acepta notación decimal simple dentro de los límites; cualquier otra cosa es ErrValidation.
func ParseProductInput(qty, price string) (decimal.Decimal, decimal.Decimal, error) {
	q, err := parseAmount("cantidad", qty)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	p, err := parseAmount("precio", price)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return q, p, nil
}

func parseAmount(label, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %s %q no admite notación exponencial", domain.ErrValidation, label, raw)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q no es un número", domain.ErrValidation, label, raw)
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s %q supera %d dígitos enteros", domain.ErrValidation, label, raw, maxIntegerDigits)
	}
	if !d.Equal(d.Truncate(maxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: %s %q tiene más de %d decimales", domain.ErrValidation, label, raw, maxDecimalPlaces)
	}
	return d, nil
}

// AddProduct agrega una línea. Con entrada inválida devuelve ErrValidation y no toca nada.
func (s *InvoiceSession) AddProduct(name string, quantity, unitPrice decimal.Decimal) (entity.LineItem, error) {
	item, err := s.ledger.Add(name, quantity, unitPrice)
	if err != nil {
		return entity.LineItem{}, err
	}
	return item, s.Refresh()
}

// AddProductInput atajo de ParseProductInput + AddProduct.
func (s *InvoiceSession) AddProductInput(name, qty, price string) (entity.LineItem, error) {
	q, p, err := ParseProductInput(qty, price)
	if err != nil {
		return entity.LineItem{}, err
	}
	return s.AddProduct(name, q, p)
}

// RemoveProduct elimina la fila index. Un índice obsoleto se registra y se devuelve
// ErrIndexOutOfRange sin modificar el ledger; es recuperable.
func (s *InvoiceSession) RemoveProduct(index int) error {
	if err := s.ledger.RemoveAt(index); err != nil {
		s.log.Warn().Err(err).Int("index", index).Msg("eliminación ignorada")
		return err
	}
	return s.Refresh()
}

// SetHeaderField actualiza un campo de la cabecera.
func (s *InvoiceSession) SetHeaderField(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldSeller:
		s.header.SellerName = value
	case FieldSellerRole:
		s.header.SellerRole = value
	case FieldCustomer:
		s.header.CustomerName = value
	case FieldCustomerID:
		s.header.CustomerTaxID = value
	case FieldDate:
		d, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			return fmt.Errorf("%w: fecha %q (formato AAAA-MM-DD)", domain.ErrValidation, value)
		}
		s.header.Date = d
	default:
		return fmt.Errorf("%w: campo desconocido %q (%s)", domain.ErrValidation, field, strings.Join(HeaderFields, ", "))
	}
	return s.Refresh()
}

// SaveInvoice finaliza la factura: vacía el ledger, limpia vendedor y cliente,
// avanza el número y reinicia la fecha. Devuelve el número guardado.
func (s *InvoiceSession) SaveInvoice() (int, error) {
	saved := s.header.Number
	s.log.Info().Int("number", saved).Int("lines", s.ledger.Len()).Msg("factura guardada")

	s.ledger.Clear()
	s.header = entity.InvoiceHeader{
		Number:  saved + 1,
		Date:    truncateDay(s.now()),
		Company: s.header.Company,
	}
	return saved, s.Refresh()
}

// PrintInvoice genera el ticket PDF de la factura actual y el nombre de archivo sugerido.
func (s *InvoiceSession) PrintInvoice(ctx context.Context) ([]byte, string, error) {
	if s.printer == nil {
		return nil, "", fmt.Errorf("impresión no configurada")
	}
	pdf, err := s.printer.PrintTicket(ctx, s.View(), s.now())
	if err != nil {
		return nil, "", fmt.Errorf("imprimir factura %d: %w", s.header.Number, err)
	}
	return pdf, fmt.Sprintf("factura_%d.pdf", s.header.Number), nil
}

// View regenera la vista completa desde el estado actual del ledger.
func (s *InvoiceSession) View() View {
	items := s.ledger.Items()
	return BuildView(s.header, items, invoice.Compute(items, s.taxRate), s.taxRate)
}

// Refresh entrega al renderer una vista reconstruida desde cero.
func (s *InvoiceSession) Refresh() error {
	if s.renderer == nil {
		return nil
	}
	return s.renderer.Render(s.View())
}

// Items copia de las líneas actuales.
func (s *InvoiceSession) Items() []entity.LineItem { return s.ledger.Items() }

// Summary totales actuales sin formato.
func (s *InvoiceSession) Summary() invoice.Summary { return invoice.ComputeLedger(s.ledger, s.taxRate) }

// Header cabecera actual.
func (s *InvoiceSession) Header() entity.InvoiceHeader { return s.header }

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
