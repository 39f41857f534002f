package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
)

// Estados de una venta. El núcleo solo produce COMPLETED.
const (
	SaleStatusCompleted = "COMPLETED"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Sale representa la cabecera de una venta. Se crea una sola vez, atómicamente
// con sus líneas; inmutable después salvo vía una devolución.
type Sale struct {
	ID             int64
	Folio          string // V-YYYYMMDD-NNNN, único
	Date           time.Time
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	AmountReceived *decimal.Decimal // solo CASH
	Change         *decimal.Decimal // solo CASH
	CashierID      int64            // referencia al usuario (colaborador externo)
	Status         string
}

// SaleLine representa una línea de venta. UnitPrice es un snapshot del precio
// del producto al momento de la venta, no una referencia viva.
type SaleLine struct {
	ID           int64
	SaleID       int64
	ProductID    int64
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal // unit_price * quantity
	LineDiscount decimal.Decimal // subtotal * descuento/100
	LineTotal    decimal.Decimal // subtotal - line_discount
}
