package entity

import "time"

// InvoiceHeader cabecera de la factura en edición (no se persiste).
type InvoiceHeader struct {
	Number        int
	Date          time.Time
	Company       string // nombre de la empresa de la sesión
	SellerName    string
	SellerRole    string
	CustomerName  string
	CustomerTaxID string // identificación del cliente
}
