package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una devolución.
const (
	ReturnStatusProcessed = "PROCESSED"
)

// Return representa la cabecera de una devolución contra una venta original.
// Se crea atómicamente con sus líneas, el ajuste de stock y el movimiento de inventario.
type Return struct {
	ID           int64
	SaleID       int64  // venta original
	Folio        string // DEV-YYYYMMDD-NNNN, único
	RefundAmount decimal.Decimal
	Reason       string
	ProcessedBy  int64
	Status       string
	CreatedAt    time.Time
}

// ReturnLine representa una línea de devolución. UnitPrice se copia de la línea
// de venta original, no se recalcula ni se ajusta por descuento.
type ReturnLine struct {
	ID               int64
	ReturnID         int64
	SaleID           int64 // venta original (referencia transitiva a la línea)
	ProductID        int64
	QuantityReturned int
	UnitPrice        decimal.Decimal
	Subtotal         decimal.Decimal // unit_price * quantity_returned
}
