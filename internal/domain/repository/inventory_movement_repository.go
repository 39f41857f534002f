package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// InventoryMovementRepository puerto del registro de auditoría de stock (append-only).
type InventoryMovementRepository interface {
	// Create persiste un movimiento de inventario.
	Create(movement *entity.InventoryMovement) error
	// ListByReference lista los movimientos originados por un documento (folio).
	ListByReference(reference string) ([]*entity.InventoryMovement, error)
}
