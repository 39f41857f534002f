package dto

import "github.com/shopspring/decimal"

// ReturnItemRequest un producto a devolver.
type ReturnItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ProcessReturnRequest body para POST /api/returns.
type ProcessReturnRequest struct {
	SaleFolio string              `json:"sale_folio"`
	Items     []ReturnItemRequest `json:"items"`
	Reason    string              `json:"reason"`
}

// ReturnResponse resultado de una devolución procesada.
type ReturnResponse struct {
	ReturnID     int64           `json:"return_id"`
	Folio        string          `json:"folio"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

// SaleForReturnResponse venta resuelta para iniciar una devolución,
// con la cantidad aún devolvible por línea.
type SaleForReturnResponse struct {
	SaleID        int64                   `json:"sale_id"`
	Folio         string                  `json:"folio"`
	Date          string                  `json:"date"`
	Total         decimal.Decimal         `json:"total"`
	PaymentMethod string                  `json:"payment_method"`
	Items         []SaleLineForReturnItem `json:"items"`
}

// SaleLineForReturnItem línea de la venta original con lo ya devuelto.
type SaleLineForReturnItem struct {
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LineTotal       decimal.Decimal `json:"line_total"`
	AlreadyReturned int             `json:"already_returned"`
	Returnable      int             `json:"returnable"`
}
