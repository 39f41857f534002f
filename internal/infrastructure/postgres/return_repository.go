package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/folio"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación de ReturnRepository sobre PostgreSQL (usable con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste la cabecera de la devolución y asigna el ID generado.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO devoluciones (venta_original_id, folio_devolucion, monto_reembolsado, motivo, usuario_id, estado, fecha_hora)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ret.SaleID, ret.Folio, ret.RefundAmount, ret.Reason, ret.ProcessedBy, ret.Status, ret.CreatedAt,
	).Scan(&ret.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFolioConflict
		}
		return fmt.Errorf("insert devolución: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de devolución.
func (r *ReturnRepo) CreateLine(line *entity.ReturnLine) error {
	query := `
		INSERT INTO detalles_devolucion (devolucion_id, venta_id, producto_id, cantidad_devuelta, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.ReturnID, line.SaleID, line.ProductID, line.QuantityReturned, line.UnitPrice, line.Subtotal,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle de devolución: %w", err)
	}
	return nil
}

// SumReturnedQuantity suma lo ya devuelto de un producto contra una venta,
// solo devoluciones PROCESSED. 0 si no hay ninguna.
func (r *ReturnRepo) SumReturnedQuantity(saleID, productID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(dd.cantidad_devuelta), 0)
		FROM detalles_devolucion dd
		JOIN devoluciones d ON dd.devolucion_id = d.id
		WHERE d.venta_original_id = $1
		  AND dd.producto_id = $2
		  AND d.estado = $3`
	var total int
	err := r.q.QueryRow(context.Background(), query, saleID, productID, entity.ReturnStatusProcessed).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum cantidad devuelta: %w", err)
	}
	return total, nil
}

// NextFolioSuffix calcula (max sufijo del día) + 1 sobre devoluciones.folio_devolucion.
func (r *ReturnRepo) NextFolioSuffix(dayKey string) (int, error) {
	query := `
		SELECT COALESCE(MAX(split_part(folio_devolucion, '-', 3)::bigint), 0) + 1
		FROM devoluciones WHERE folio_devolucion LIKE $1`
	var next int
	err := r.q.QueryRow(context.Background(), query, folio.ScanPattern(folio.ReturnPrefix, dayKey)).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next folio devolución: %w", err)
	}
	return next, nil
}
