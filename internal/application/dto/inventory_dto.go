package dto

import "time"

// MovementResponse movimiento de inventario en respuestas de auditoría.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	Reference   string    `json:"reference"`
	PerformedBy int64     `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
