package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario (append-only).
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO movimientos_inventario (producto_id, tipo_movimiento, cantidad, stock_anterior, stock_nuevo, referencia, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.StockBefore, movement.StockAfter, movement.Reference,
		movement.PerformedBy, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento de inventario: %w", err)
	}
	return nil
}

// ListByReference lista los movimientos originados por un documento (folio).
func (r *InventoryMovementRepo) ListByReference(reference string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, producto_id, tipo_movimiento, cantidad, stock_anterior, stock_nuevo, referencia, usuario_id, created_at
		FROM movimientos_inventario WHERE referencia = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, reference)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.StockBefore, &m.StockAfter, &m.Reference, &m.PerformedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
