package invoicing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formato moneda fijo (en-US, USD): "$1,234.56". Solo para presentación.
func FormatCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(intPart) + "." + frac
}

// FormatQuantity cantidad sin ceros finales: "2", "1.5".
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}

// FormatRate tarifa como porcentaje: 0.15 -> "15%".
func FormatRate(r decimal.Decimal) string {
	return r.Shift(2).String() + "%"
}

// groupThousands inserta comas de miles en un entero sin signo.
// Ej: "25000" -> "25,000", "1000000" -> "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
