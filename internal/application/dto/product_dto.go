package dto

import "github.com/shopspring/decimal"

// ProductResponse producto en respuestas del catálogo.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	StockMinimum    int             `json:"stock_minimum"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Active          bool            `json:"active"`
}
