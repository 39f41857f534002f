package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/returns"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	InventoryUC   *usecase.InventoryUseCase
	ProcessSale   *sales.ProcessSaleUseCase
	ProcessReturn *returns.ProcessReturnUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: lecturas del catálogo (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.ProcessSale)
	salesGroup.Post("/", saleHandler.Process)

	// Returns (protegido; procesar exige rol admin o cajero)
	returnsGroup := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ProcessReturn)
	returnsGroup.Get("/lookup/:folio", returnHandler.Lookup)
	returnsGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleCajero), returnHandler.Process)

	// Inventory: auditoría de movimientos por folio (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/movements/:reference", inventoryHandler.MovementsByReference)
}
