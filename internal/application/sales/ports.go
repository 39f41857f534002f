package sales

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repo de ventas atado a la tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
