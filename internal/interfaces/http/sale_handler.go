package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc *sales.ProcessSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.ProcessSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Process procesa una venta: cabecera + líneas en una sola transacción.
// POST /api/sales
func (h *SaleHandler) Process(c *fiber.Ctx) error {
	cashierID := GetUserID(c)
	if cashierID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ProcessSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.ProcessSale(c.Context(), cashierID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito o método de pago inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo procesar la venta"})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
