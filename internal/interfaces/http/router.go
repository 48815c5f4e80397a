package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/edinho-pneus-api/internal/application/analytics"
	"github.com/jhoicas/edinho-pneus-api/internal/application/export"
	"github.com/jhoicas/edinho-pneus-api/internal/application/pos"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	ServiceOrderUC *usecase.ServiceOrderUseCase
	TransactionUC  *usecase.TransactionUseCase
	CourierUC      *usecase.CourierUseCase
	CatalogUC      *pos.CatalogUseCase
	CheckoutUC     *pos.CheckoutUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ExportUC       *export.ExportUseCase

	Session      SessionConfig
	DefaultStore string
	Logger       *logger.Logger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	if deps.Session.DefaultStore == "" {
		deps.Session.DefaultStore = deps.DefaultStore
	}

	// Área "protegida" só resolve o escopo de loja; nenhuma rota é bloqueada.
	api := app.Group("/api", RequestLogger(log.Component("http")), StoreScope(deps.Session.Secret, log.Component("scope")))

	userHandler := NewUserHandler(deps.UserUC, deps.Session)
	api.Post("/session", userHandler.Session)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	exportHandler := NewExportHandler(deps.ExportUC, deps.DefaultStore)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DefaultStore)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/export.pdf", exportHandler.InventoryPDF)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/approve", productHandler.Approve)
	products.Patch("/:id/stock", productHandler.UpdateStock)

	serviceOrders := api.Group("/service-orders")
	soHandler := NewServiceOrderHandler(deps.ServiceOrderUC)
	serviceOrders.Get("/", soHandler.List)
	serviceOrders.Get("/board", soHandler.Board)
	serviceOrders.Get("/:id", soHandler.GetByID)
	serviceOrders.Patch("/:id/status", soHandler.Move)
	serviceOrders.Post("/:id/advance", soHandler.Advance)
	serviceOrders.Post("/:id/back", soHandler.Back)

	transactions := api.Group("/transactions")
	txHandler := NewTransactionHandler(deps.TransactionUC, deps.DefaultStore)
	transactions.Get("/", txHandler.List)
	transactions.Post("/", txHandler.Create)
	transactions.Get("/ledger", txHandler.Ledger)
	transactions.Get("/export.xml", exportHandler.LedgerXML)

	couriers := api.Group("/courier-orders")
	courierHandler := NewCourierHandler(deps.CourierUC)
	couriers.Get("/", courierHandler.List)
	couriers.Get("/:id", courierHandler.GetByID)
	couriers.Patch("/:id/status", courierHandler.SetStatus)
	couriers.Post("/:id/advance", courierHandler.Advance)
	couriers.Post("/:id/cancel", courierHandler.Cancel)

	posGroup := api.Group("/pos")
	posHandler := NewPOSHandler(deps.CatalogUC, deps.CheckoutUC, deps.DefaultStore, log.Component("pos"))
	posGroup.Get("/catalog", posHandler.Catalog)
	posGroup.Get("/categories", posHandler.Categories)
	posGroup.Post("/checkout", posHandler.Checkout)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.DefaultStore)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
