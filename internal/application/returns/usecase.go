package returns

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/folio"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ProcessReturnUseCase valida y procesa devoluciones contra una venta original:
// cantidades acumuladas contra lo comprado, reembolso al precio unitario
// almacenado, incremento de stock y movimiento de inventario, todo en una
// sola transacción.
type ProcessReturnUseCase struct {
	txRunner TxRunner

	// Repos atados al pool, para la consulta de venta fuera de transacción.
	saleRepo    repository.SaleRepository
	returnRepo  repository.ReturnRepository
	productRepo repository.ProductRepository

	now func() time.Time
}

// NewProcessReturnUseCase construye el caso de uso.
func NewProcessReturnUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
	productRepo repository.ProductRepository,
) *ProcessReturnUseCase {
	return &ProcessReturnUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		returnRepo:  returnRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// validatedItem línea ya validada dentro de la transacción.
type validatedItem struct {
	productID int64
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal
}

// ProcessReturn ejecuta la devolución completa o nada:
//
//  1. Resuelve la venta por folio; debe existir y estar COMPLETED.
//  2. Obtiene el folio DEV del día.
//  3. Por cada producto: la línea original debe existir; lo ya devuelto en
//     devoluciones PROCESSED más lo solicitado no puede exceder lo comprado;
//     el subtotal usa el precio unitario almacenado en la venta (sin
//     reajuste por descuento).
//  4. Persiste cabecera, líneas, incrementa stock y registra el movimiento
//     de inventario con snapshot antes/después.
//
// Cualquier error en cualquier paso revierte la unidad completa: sin
// devolución parcial, sin stock parcial, sin folio consumido. Un choque de
// folio con una devolución concurrente reintenta la unidad una vez.
func (uc *ProcessReturnUseCase) ProcessReturn(ctx context.Context, processorID int64, in dto.ProcessReturnRequest) (*dto.ReturnResponse, error) {
	// Rechazos baratos antes de abrir la transacción
	if in.SaleFolio == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := uc.now()
	dayKey := folio.DayKey(now)

	var ret *entity.Return

	for attempt := 0; ; attempt++ {
		err := uc.txRunner.RunDevolucion(ctx, func(
			saleRepo repository.SaleRepository,
			returnRepo repository.ReturnRepository,
			productRepo repository.ProductRepository,
			movRepo repository.InventoryMovementRepository,
		) error {
			sale, err := saleRepo.GetByFolio(in.SaleFolio)
			if err != nil {
				return err
			}
			if sale == nil || sale.Status != entity.SaleStatusCompleted {
				return domain.ErrNotFound
			}

			suffix, err := returnRepo.NextFolioSuffix(dayKey)
			if err != nil {
				return err
			}
			folioDev := folio.Build(folio.ReturnPrefix, dayKey, suffix)

			// Validación de cantidades acumuladas y cálculo del reembolso.
			// inRequest acumula lo pedido en esta misma petición: un producto
			// repetido en el carrito cuenta contra el mismo límite.
			var refund decimal.Decimal
			validated := make([]validatedItem, 0, len(in.Items))
			inRequest := make(map[int64]int, len(in.Items))
			for _, item := range in.Items {
				line, err := saleRepo.GetLineByProduct(sale.ID, item.ProductID)
				if err != nil {
					return err
				}
				if line == nil {
					return domain.ErrProductNotInSale
				}
				already, err := returnRepo.SumReturnedQuantity(sale.ID, item.ProductID)
				if err != nil {
					return err
				}
				already += inRequest[item.ProductID]
				if already+item.Quantity > line.Quantity {
					return &domain.ReturnLimitError{
						ProductID:       item.ProductID,
						Purchased:       line.Quantity,
						AlreadyReturned: already,
						Requested:       item.Quantity,
					}
				}
				inRequest[item.ProductID] += item.Quantity
				subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
				refund = refund.Add(subtotal)
				validated = append(validated, validatedItem{
					productID: item.ProductID,
					quantity:  item.Quantity,
					unitPrice: line.UnitPrice,
					subtotal:  subtotal,
				})
			}

			ret = &entity.Return{
				SaleID:       sale.ID,
				Folio:        folioDev,
				RefundAmount: refund,
				Reason:       in.Reason,
				ProcessedBy:  processorID,
				Status:       entity.ReturnStatusProcessed,
				CreatedAt:    now,
			}
			if err := returnRepo.Create(ret); err != nil {
				return err
			}

			for _, item := range validated {
				if err := returnRepo.CreateLine(&entity.ReturnLine{
					ReturnID:         ret.ID,
					SaleID:           sale.ID,
					ProductID:        item.productID,
					QuantityReturned: item.quantity,
					UnitPrice:        item.unitPrice,
					Subtotal:         item.subtotal,
				}); err != nil {
					return err
				}
				// Incremento atómico: el UPDATE bloquea la fila del producto,
				// serializando devoluciones concurrentes del mismo producto
				stockAfter, err := productRepo.AddStock(item.productID, item.quantity)
				if err != nil {
					return err
				}
				if err := movRepo.Create(&entity.InventoryMovement{
					ProductID:   item.productID,
					Type:        entity.MovementTypeReturn,
					Quantity:    item.quantity,
					StockBefore: stockAfter - item.quantity,
					StockAfter:  stockAfter,
					Reference:   folioDev,
					PerformedBy: processorID,
					CreatedAt:   now,
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrFolioConflict) && attempt == 0 {
			continue
		}
		return nil, err
	}

	return &dto.ReturnResponse{
		ReturnID:     ret.ID,
		Folio:        ret.Folio,
		RefundAmount: ret.RefundAmount,
	}, nil
}

// LookupSaleForReturn resuelve una venta por folio y devuelve sus líneas con
// la cantidad aún devolvible (comprado menos lo ya devuelto).
func (uc *ProcessReturnUseCase) LookupSaleForReturn(ctx context.Context, saleFolio string) (*dto.SaleForReturnResponse, error) {
	if saleFolio == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByFolio(saleFolio)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.Status != entity.SaleStatusCompleted {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLines(sale.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleForReturnResponse{
		SaleID:        sale.ID,
		Folio:         sale.Folio,
		Date:          sale.Date.Format("2006-01-02 15:04:05"),
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Items:         make([]dto.SaleLineForReturnItem, 0, len(lines)),
	}
	for _, line := range lines {
		already, err := uc.returnRepo.SumReturnedQuantity(sale.ID, line.ProductID)
		if err != nil {
			return nil, err
		}
		name := ""
		if product, err := uc.productRepo.GetByID(line.ProductID); err == nil && product != nil {
			name = product.Name
		}
		resp.Items = append(resp.Items, dto.SaleLineForReturnItem{
			ProductID:       line.ProductID,
			ProductName:     name,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			LineTotal:       line.LineTotal,
			AlreadyReturned: already,
			Returnable:      line.Quantity - already,
		})
	}
	return resp, nil
}
