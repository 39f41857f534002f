package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Nunca se elimina, solo se desactiva.
// Stock es mutado únicamente por el flujo de devoluciones (incremento).
type Product struct {
	ID              int64
	Code            string // código escaneable, único
	Name            string
	Price           decimal.Decimal
	Stock           int
	StockMinimum    int
	DiscountPercent decimal.Decimal // 0–100
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock indica si el producto está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.StockMinimum
}
