package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/folio"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna el ID generado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (folio, fecha_hora, subtotal, descuento, total, metodo_pago, monto_recibido, cambio, usuario_id, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.Folio, sale.Date, sale.Subtotal, sale.Discount, sale.Total,
		sale.PaymentMethod, sale.AmountReceived, sale.Change, sale.CashierID, sale.Status,
	).Scan(&sale.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFolioConflict
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO detalles_venta (venta_id, producto_id, cantidad, precio_unitario, subtotal, descuento_linea, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.SaleID, line.ProductID, line.Quantity, line.UnitPrice,
		line.Subtotal, line.LineDiscount, line.LineTotal,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// GetByFolio obtiene una venta por folio. (nil, nil) si no existe.
func (r *SaleRepo) GetByFolio(f string) (*entity.Sale, error) {
	query := `
		SELECT id, folio, fecha_hora, subtotal, descuento, total, metodo_pago, monto_recibido, cambio, usuario_id, estado
		FROM ventas WHERE folio = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, f).Scan(
		&s.ID, &s.Folio, &s.Date, &s.Subtotal, &s.Discount, &s.Total,
		&s.PaymentMethod, &s.AmountReceived, &s.Change, &s.CashierID, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// GetLines obtiene todas las líneas de una venta.
func (r *SaleRepo) GetLines(saleID int64) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal, descuento_linea, total_linea
		FROM detalles_venta WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalles de venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal, &l.LineDiscount, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetLineByProduct obtiene la línea de un producto dentro de una venta. (nil, nil) si no existe.
func (r *SaleRepo) GetLineByProduct(saleID, productID int64) (*entity.SaleLine, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal, descuento_linea, total_linea
		FROM detalles_venta WHERE venta_id = $1 AND producto_id = $2`
	var l entity.SaleLine
	err := r.q.QueryRow(context.Background(), query, saleID, productID).Scan(
		&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal, &l.LineDiscount, &l.LineTotal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle por producto: %w", err)
	}
	return &l, nil
}

// NextFolioSuffix calcula (max sufijo del día) + 1 sobre ventas.folio.
// Corre dentro de la transacción del caller; si falla, la unidad completa aborta.
func (r *SaleRepo) NextFolioSuffix(dayKey string) (int, error) {
	query := `
		SELECT COALESCE(MAX(split_part(folio, '-', 3)::bigint), 0) + 1
		FROM ventas WHERE folio LIKE $1`
	var next int
	err := r.q.QueryRow(context.Background(), query, folio.ScanPattern(folio.SalePrefix, dayKey)).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next folio venta: %w", err)
	}
	return next, nil
}
