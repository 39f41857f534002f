package sales

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

var cien = decimal.NewFromInt(100)

// ProcessSaleUseCase procesa una venta: calcula totales por línea y agregados
// y persiste cabecera + líneas en una sola transacción, con folio del día.
type ProcessSaleUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(txRunner TxRunner) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner, now: time.Now}
}

// ProcessSale valida el carrito, calcula subtotal/descuento por línea según:
//
//	subtotal_linea  = precio_unitario * cantidad
//	descuento_linea = subtotal_linea * descuento/100
//	total_linea     = subtotal_linea - descuento_linea
//
// y persiste todo atómicamente. El total viene del caller y se guarda tal
// cual (comportamiento del sistema original). Si el insert de la cabecera
// choca con un folio ya tomado por una petición concurrente, la unidad
// completa se reintenta una vez.
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, cashierID int64, in dto.ProcessSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == entity.PaymentCash {
		// Efectivo exige monto recibido y cambio, juntos
		if in.AmountReceived == nil || in.Change == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(cien) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := uc.now()
	dayKey := folio.DayKey(now)

	// Totales por línea y agregados
	var subtotal, discount decimal.Decimal
	lines := make([]*entity.SaleLine, 0, len(in.Items))
	for _, item := range in.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineSubtotal := item.UnitPrice.Mul(qty)
		lineDiscount := lineSubtotal.Mul(item.DiscountPercent).Div(cien)
		lines = append(lines, &entity.SaleLine{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     lineSubtotal,
			LineDiscount: lineDiscount,
			LineTotal:    lineSubtotal.Sub(lineDiscount),
		})
		subtotal = subtotal.Add(lineSubtotal)
		discount = discount.Add(lineDiscount)
	}

	var sale *entity.Sale

	// Un reintento si el folio calculado choca con una venta concurrente
	// (constraint único sobre ventas.folio).
	for attempt := 0; ; attempt++ {
		err := uc.txRunner.RunVenta(ctx, func(saleRepo repository.SaleRepository) error {
			suffix, err := saleRepo.NextFolioSuffix(dayKey)
			if err != nil {
				return err
			}
			sale = &entity.Sale{
				Folio:          folio.Build(folio.SalePrefix, dayKey, suffix),
				Date:           now,
				Subtotal:       subtotal,
				Discount:       discount,
				Total:          in.Total,
				PaymentMethod:  in.PaymentMethod,
				AmountReceived: in.AmountReceived,
				Change:         in.Change,
				CashierID:      cashierID,
				Status:         entity.SaleStatusCompleted,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
			for _, line := range lines {
				line.SaleID = sale.ID
				if err := saleRepo.CreateLine(line); err != nil {
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

	return &dto.SaleResponse{
		SaleID:   sale.ID,
		Folio:    sale.Folio,
		Subtotal: sale.Subtotal,
		Discount: sale.Discount,
		Total:    sale.Total,
	}, nil
}
