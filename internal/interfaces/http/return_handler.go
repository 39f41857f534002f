package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/returns"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// ReturnHandler maneja las peticiones HTTP de devoluciones (protegido).
type ReturnHandler struct {
	uc *returns.ProcessReturnUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(uc *returns.ProcessReturnUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// Process procesa una devolución contra una venta original.
// POST /api/returns
func (h *ReturnHandler) Process(c *fiber.Ctx) error {
	processorID := GetUserID(c)
	if processorID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ProcessReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ret, err := h.uc.ProcessReturn(c.Context(), processorID, in)
	if err != nil {
		var limitErr *domain.ReturnLimitError
		switch {
		case errors.As(err, &limitErr):
			// Regla de negocio: el mensaje lleva comprado/devuelto/disponible para mostrar al cajero
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RETURN_LIMIT", Message: limitErr.Error()})
		case errors.Is(err, domain.ErrProductNotInSale):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el producto no pertenece a la venta"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de devolución inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada o no completada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo procesar la devolución"})
	}
	return c.Status(fiber.StatusCreated).JSON(ret)
}

// Lookup resuelve una venta por folio con la cantidad devolvible por línea.
// GET /api/returns/lookup/:folio
func (h *ReturnHandler) Lookup(c *fiber.Ctx) error {
	f := c.Params("folio")
	if f == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "folio requerido"})
	}
	sale, err := h.uc.LookupSaleForReturn(c.Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada o no completada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "folio requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar la venta"})
	}
	return c.JSON(sale)
}
