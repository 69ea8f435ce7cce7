package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/internal/application/audit"
	"github.com/jhoicas/farm-ledger/internal/application/auth"
	"github.com/jhoicas/farm-ledger/internal/application/billing"
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/inventory"
	"github.com/jhoicas/farm-ledger/internal/application/report"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	FlockUC       *usecase.FlockUseCase
	BatchUC       *usecase.BatchUseCase
	MortalityUC   *usecase.MortalityUseCase
	FeedUC        *usecase.FeedUseCase
	HealthUC      *usecase.HealthUseCase
	ProductionUC  *usecase.ProductionUseCase
	BirdSaleUC    *usecase.BirdSaleUseCase
	EggSaleUC     *usecase.EggSaleUseCase
	PurchaseUC    *usecase.PurchaseUseCase
	CustomerUC    *usecase.CustomerUseCase
	ItemUC        *inventory.ItemUseCase
	TransactionUC *inventory.TransactionUseCase
	Replenishment *inventory.ReplenishmentUseCase
	InvoiceUC     *billing.InvoiceUseCase
	InvoicePDFUC  *billing.PDFUseCase
	Dashboard     *appanalytics.DashboardUseCase
	Export        *report.ExportUseCase
	Audit         *audit.Recorder
	Metrics       prometheus.Gatherer // nil = sin /metrics
	JWTSecret     string
	Now           func() time.Time // reloj para campos derivados; nil = time.Now
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	var authOpts []AuthOption
	if deps.UserUC != nil {
		authOpts = append(authOpts, WithUserLookup(deps.UserUC))
	}
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, authOpts...))
	protected.Get("/auth/me", authHandler.Me)

	// Registros de la granja
	NewRegistryViewHandler(deps.FlockUC, func(f entity.Flock) dto.FlockView {
		return appanalytics.ToFlockView(f, now())
	}, log).Mount(protected.Group("/flocks"))
	NewRegistryHandler(deps.BatchUC, log).Mount(protected.Group("/batches"))
	NewRegistryHandler(deps.MortalityUC, log).Mount(protected.Group("/mortality"))
	NewRegistryHandler(deps.FeedUC, log).Mount(protected.Group("/feed"))
	NewRegistryHandler(deps.HealthUC, log).Mount(protected.Group("/health-records"))
	NewRegistryHandler(deps.ProductionUC, log).Mount(protected.Group("/production"))
	NewRegistryHandler(deps.BirdSaleUC, log).Mount(protected.Group("/bird-sales"))
	NewRegistryHandler(deps.EggSaleUC, log).Mount(protected.Group("/egg-sales"))
	NewRegistryHandler(deps.PurchaseUC, log).Mount(protected.Group("/purchases"))

	// Vistas agregadas (se registran antes de /customers/:id para no chocar con el CRUD)
	dashboard := NewDashboardHandler(deps.Dashboard, log)
	protected.Get("/dashboard/stats", dashboard.GetStats)
	protected.Get("/customers-revenue", dashboard.CustomersRevenue)
	protected.Get("/customers/:id/revenue", dashboard.CustomerRevenue)
	protected.Get("/batches-overview", dashboard.BatchViews)
	summaries := protected.Group("/summaries")
	summaries.Get("/batches", dashboard.BatchSummary)
	summaries.Get("/inventory", dashboard.InventorySummary)
	summaries.Get("/feed", dashboard.FeedSummary)
	summaries.Get("/health", dashboard.HealthSummary)
	summaries.Get("/production", dashboard.ProductionSummary)
	summaries.Get("/audit", RequireRole(entity.RoleAdmin), dashboard.AuditSummary)

	NewRegistryHandler(deps.CustomerUC, log).Mount(protected.Group("/customers"))

	// Inventario
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.TransactionUC, deps.Replenishment, log)
	inv.Get("/transactions", inventoryHandler.ListAllTransactions)
	inv.Get("/reconcile", inventoryHandler.Reconcile)
	inv.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)
	inv.Post("/items/:id/transactions", inventoryHandler.ApplyTransaction)
	inv.Get("/items/:id/transactions", inventoryHandler.ListTransactions)
	NewRegistryViewHandler(deps.ItemUC, inventory.ToItemView, log).Mount(inv.Group("/items"))

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC, log)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/from-sale", invoiceHandler.CreateFromSale)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Dashboard, deps.Export, log)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/export/:kind", reportHandler.Export)

	// Administración (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	protected.Get("/audit-logs", RequireRole(entity.RoleAdmin), NewAuditHandler(deps.Audit, log).List)
}
