package entity

import "time"

// Tipos de movimiento de inventario registrados por el núcleo transaccional.
const (
	MovementTypeReturn = "RETURN"
)

// InventoryMovement es el registro de auditoría de cada cambio de stock,
// append-only, con snapshot de stock antes y después.
type InventoryMovement struct {
	ID          int64
	ProductID   int64
	Type        string
	Quantity    int
	StockBefore int
	StockAfter  int
	Reference   string // folio del documento que originó el movimiento
	PerformedBy int64
	CreatedAt   time.Time
}
