package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/facturacion/internal/application/invoicing"
)

// TableRenderer dibuja la vista completa como tabla de ancho fijo. Cada Render
// reimprime todo; no conserva nada de la vista anterior.
type TableRenderer struct {
	w io.Writer
}

// NewTableRenderer crea un renderer que escribe en w.
func NewTableRenderer(w io.Writer) *TableRenderer { return &TableRenderer{w: w} }

var _ invoicing.Renderer = (*TableRenderer)(nil)

// Render implementa invoicing.Renderer.
func (r *TableRenderer) Render(v invoicing.View) error {
	_, err := io.WriteString(r.w, FormatView(v))
	return err
}

type column struct {
	title string
	right bool
}

var columns = []column{
	{title: "#", right: true},
	{title: "Producto"},
	{title: "Cant.", right: true},
	{title: "P. Unit.", right: true},
	{title: "Total", right: true},
}

// FormatView texto de la factura: cabecera, tabla de productos y totales.
// El número de fila mostrado es Index+1.
func FormatView(v invoicing.View) string {
	var b strings.Builder
	h := v.Header

	seller := orDash(h.SellerName)
	if h.SellerRole != "" {
		seller += " (" + h.SellerRole + ")"
	}
	fmt.Fprintf(&b, "Factura N° %d  |  Fecha: %s\n", h.Number, h.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Empresa: %s\n", orDash(h.Company))
	fmt.Fprintf(&b, "Vendedor: %s\n", seller)
	fmt.Fprintf(&b, "Cliente: %s  |  Identificación: %s\n\n", orDash(h.CustomerName), orDash(h.CustomerTaxID))

	cells := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		cells = append(cells, []string{strconv.Itoa(r.Index + 1), r.Name, r.Quantity, r.UnitPrice, r.Total})
	}
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = utf8.RuneCountInString(c.title)
	}
	for _, row := range cells {
		for i, c := range row {
			if n := utf8.RuneCountInString(c); n > widths[i] {
				widths[i] = n
			}
		}
	}

	sep := separator(widths)
	b.WriteString(sep)
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = fmt.Sprintf("%-*s", widths[i], c.title)
	}
	b.WriteString("| " + strings.Join(titles, " | ") + " |\n")
	b.WriteString(sep)
	if len(cells) == 0 {
		inner := len(widths)*3 - 3
		for _, w := range widths {
			inner += w
		}
		fmt.Fprintf(&b, "| %-*s |\n", inner, "sin productos")
	}
	for _, row := range cells {
		out := make([]string, len(row))
		for i, c := range row {
			if columns[i].right {
				out[i] = fmt.Sprintf("%*s", widths[i], c)
			} else {
				out[i] = fmt.Sprintf("%-*s", widths[i], c)
			}
		}
		b.WriteString("| " + strings.Join(out, " | ") + " |\n")
	}
	b.WriteString(sep)

	totals := [][2]string{
		{"Subtotal:", v.Subtotal},
		{"IVA (" + v.TaxRate + "):", v.Tax},
		{"TOTAL:", v.GrandTotal},
	}
	lw, vw := 0, 0
	for _, t := range totals {
		lw = max(lw, utf8.RuneCountInString(t[0]))
		vw = max(vw, utf8.RuneCountInString(t[1]))
	}
	for _, t := range totals {
		fmt.Fprintf(&b, "%-*s %*s\n", lw, t[0], vw, t[1])
	}
	return b.String()
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
