package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ProductRepository puerto de lectura del catálogo y ajuste de stock.
// El núcleo transaccional solo escribe stock (devoluciones); el resto del CRUD
// de productos vive fuera de este servicio.
type ProductRepository interface {
	// GetByID obtiene un producto por ID. (nil, nil) si no existe.
	GetByID(id int64) (*entity.Product, error)
	// GetByCode obtiene un producto por código escaneable. (nil, nil) si no existe.
	GetByCode(code string) (*entity.Product, error)
	// List lista productos (solo activos si onlyActive) con paginación.
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	// ListLowStock lista productos activos con stock <= stock_minimo.
	ListLowStock() ([]*entity.Product, error)
	// AddStock incrementa el stock en qty de forma atómica (UPDATE ... RETURNING)
	// y devuelve el stock resultante. Retorna domain.ErrNotFound si el producto no existe.
	AddStock(id int64, qty int) (int, error)
}
