package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quikfix/spares-api/internal/application/auth"
	"github.com/quikfix/spares-api/internal/application/inventory"
	"github.com/quikfix/spares-api/internal/application/order"
	"github.com/quikfix/spares-api/internal/application/report"
	"github.com/quikfix/spares-api/internal/application/usecase"
	"github.com/quikfix/spares-api/internal/domain/entity"
)

// RouterDeps carries the use cases the router wires to handlers.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CatalogUC   *usecase.CatalogUseCase
	LocationUC  *usecase.LocationUseCase
	SupplierUC  *usecase.SupplierUseCase
	InventoryUC *inventory.UseCase
	CreateOrder *order.CreateOrderUseCase
	OrderUC     *order.UseCase
	ReportUC    *report.SummaryUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Catalog reads (public, the storefront browses without an account)
	productHandler := NewProductHandler(deps.ProductUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/brands", catalogHandler.ListBrands)

	// Everything below requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (customer or admin; handlers enforce per-role restrictions)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.UpdateStatus)

	// Catalog writes (admin)
	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Post("/products", adminOnly, productHandler.Create)
	protected.Patch("/products/:id", adminOnly, productHandler.Update)
	protected.Post("/categories", adminOnly, catalogHandler.CreateCategory)
	protected.Post("/brands", adminOnly, catalogHandler.CreateBrand)

	// Back-office (admin)
	admin := protected.Group("/admin", adminOnly)

	locations := admin.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)

	suppliers := admin.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)

	inv := admin.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/inward", inventoryHandler.RecordInward)
	inv.Post("/adjust", inventoryHandler.AdjustStock)
	inv.Get("/transactions", inventoryHandler.ListTransactions)
	inv.Get("/stock", inventoryHandler.GetStockLevel)

	reportHandler := NewReportHandler(deps.ReportUC)
	admin.Get("/reports", reportHandler.GetSummary)
}
