package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/inventory"
	"github.com/jhoicas/Compras-api/internal/application/procurement"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RoleAdmin único rol autorizado a eliminar registros.
const RoleAdmin = "admin"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	BatchUC       *usecase.BatchUseCase
	OrderUC       *usecase.PurchaseOrderUseCase
	AccountingUC  *usecase.AccountingUseCase
	DeleteOrder   *procurement.DeleteOrderUseCase
	DeleteProduct *procurement.DeleteProductUseCase
	OrderSheet    *procurement.OrderSheetUseCase
	Replenish     *inventory.ReplenishmentUseCase
	// JWTSecret vacío deja la API sin autenticación (desarrollo local).
	JWTSecret     string
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		adminOnly = RequireRole(RoleAdmin)
	}

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DeleteProduct)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/replenishment", NewReplenishmentHandler(deps.Replenish).Generate)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/stock-status", productHandler.StockStatus)
	products.Get("/:id/stock-status/batches", productHandler.StockStatusFromBatches)

	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/valid", batchHandler.ListValid)
	batches.Get("/expired", batchHandler.ListExpired)
	batches.Get("/near-expiry", batchHandler.ListNearExpiry)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Patch("/:id/quantity", batchHandler.UpdateQuantity)
	batches.Delete("/:id", adminOnly, batchHandler.Delete)

	orders := api.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.OrderUC, deps.DeleteOrder, deps.BatchUC, deps.OrderSheet)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/overdue", orderHandler.ListOverdue)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)
	orders.Get("/:id/batches", orderHandler.Batches)
	orders.Get("/:id/pdf", orderHandler.PDF)

	movements := api.Group("/accounting-movements")
	accountingHandler := NewAccountingHandler(deps.AccountingUC)
	movements.Post("/", accountingHandler.Create)
	movements.Get("/", accountingHandler.List)
	movements.Get("/balance", accountingHandler.Balance)
	movements.Get("/:id", accountingHandler.GetByID)
}
