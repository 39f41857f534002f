package dto

import "github.com/shopspring/decimal"

// SaleItemRequest una línea del carrito.
type SaleItemRequest struct {
	ProductID       int64           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"` // 0–100, opcional
}

// ProcessSaleRequest body para POST /api/sales.
// AmountReceived y Change son obligatorios, juntos, solo cuando PaymentMethod es CASH.
type ProcessSaleRequest struct {
	Items          []SaleItemRequest `json:"items"`
	Total          decimal.Decimal   `json:"total"`
	PaymentMethod  string            `json:"payment_method"` // CASH | CARD | TRANSFER
	AmountReceived *decimal.Decimal  `json:"amount_received,omitempty"`
	Change         *decimal.Decimal  `json:"change,omitempty"`
}

// SaleResponse resultado de una venta procesada.
type SaleResponse struct {
	SaleID   int64           `json:"sale_id"`
	Folio    string          `json:"folio"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}
