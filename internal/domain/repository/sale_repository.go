package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	// Create persiste la cabecera y asigna el ID generado.
	// Retorna domain.ErrFolioConflict si el folio ya existe.
	Create(sale *entity.Sale) error
	// CreateLine persiste una línea de venta.
	CreateLine(line *entity.SaleLine) error
	// GetByFolio obtiene una venta por folio. (nil, nil) si no existe.
	GetByFolio(f string) (*entity.Sale, error)
	// GetLines obtiene todas las líneas de una venta.
	GetLines(saleID int64) ([]*entity.SaleLine, error)
	// GetLineByProduct obtiene la línea de un producto dentro de una venta. (nil, nil) si no existe.
	GetLineByProduct(saleID, productID int64) (*entity.SaleLine, error)
	// NextFolioSuffix calcula (max sufijo existente para el día) + 1 sobre los folios de ventas.
	NextFolioSuffix(dayKey string) (int, error)
}
