package usecase

import (
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// InventoryUseCase lecturas de la auditoría de inventario.
type InventoryUseCase struct {
	movRepo repository.InventoryMovementRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(movRepo repository.InventoryMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{movRepo: movRepo}
}

// MovementsByReference lista los movimientos originados por un documento (folio).
func (uc *InventoryUseCase) MovementsByReference(reference string) ([]*dto.MovementResponse, error) {
	if reference == "" {
		return nil, domain.ErrInvalidInput
	}
	movements, err := uc.movRepo.ListByReference(reference)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			Reference:   m.Reference,
			PerformedBy: m.PerformedBy,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}
