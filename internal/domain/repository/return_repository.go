package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ReturnRepository puerto de persistencia para devoluciones y sus líneas.
type ReturnRepository interface {
	// Create persiste la cabecera y asigna el ID generado.
	// Retorna domain.ErrFolioConflict si el folio ya existe.
	Create(ret *entity.Return) error
	// CreateLine persiste una línea de devolución.
	CreateLine(line *entity.ReturnLine) error
	// SumReturnedQuantity suma cantidad_devuelta de todas las devoluciones
	// PROCESSED contra la venta para un producto. 0 si no hay ninguna.
	SumReturnedQuantity(saleID, productID int64) (int, error)
	// NextFolioSuffix calcula (max sufijo existente para el día) + 1 sobre los folios de devoluciones.
	NextFolioSuffix(dayKey string) (int, error)
}
