package returns

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos de la devolución
// atados a la tx. Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	RunDevolucion(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		returnRepo repository.ReturnRepository,
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
