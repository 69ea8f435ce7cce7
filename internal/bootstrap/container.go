// Package bootstrap arma los casos de uso sobre un BlobStore. Lo usan cmd/api, cmd/farmctl y los tests HTTP.
package bootstrap

import (
	"time"

	appanalytics "github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/internal/application/audit"
	"github.com/jhoicas/farm-ledger/internal/application/auth"
	"github.com/jhoicas/farm-ledger/internal/application/billing"
	"github.com/jhoicas/farm-ledger/internal/application/inventory"
	"github.com/jhoicas/farm-ledger/internal/application/report"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/farm-ledger/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/farm-ledger/internal/interfaces/http"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// Options parámetros del contenedor. Los campos cero usan valores por defecto.
type Options struct {
	Logger     *logger.Logger
	Metrics    *metrics.Metrics // nil = sin métricas
	AuditLimit int
	JWT        auth.JWTConfig
	FarmName   string
	Now        func() time.Time
}

// Container casos de uso de la granja listos para usar.
type Container struct {
	Blobs repository.BlobStore
	Log   *logger.Logger

	Audit         *audit.Recorder
	Auth          *auth.AuthUseCase
	Users         *usecase.UserUseCase
	Flocks        *usecase.FlockUseCase
	Batches       *usecase.BatchUseCase
	Mortality     *usecase.MortalityUseCase
	Feed          *usecase.FeedUseCase
	Health        *usecase.HealthUseCase
	Production    *usecase.ProductionUseCase
	BirdSales     *usecase.BirdSaleUseCase
	EggSales      *usecase.EggSaleUseCase
	Purchases     *usecase.PurchaseUseCase
	Customers     *usecase.CustomerUseCase
	Items         *inventory.ItemUseCase
	Transactions  *inventory.TransactionUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Invoices      *billing.InvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	Dashboard     *appanalytics.DashboardUseCase
	Export        *report.ExportUseCase

	metrics *metrics.Metrics
	now     func() time.Time
}

// New construye todas las colecciones sobre blobs y los casos de uso que las usan.
func New(blobs repository.BlobStore, opts Options) *Container {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	collOpts := []collection.Option{collection.WithClock(now), collection.WithLogger(log.Named("collection"))}
	auditOpts := []audit.Option{audit.WithClock(now), audit.WithLimit(opts.AuditLimit)}
	if opts.Metrics != nil {
		collOpts = append(collOpts, collection.WithObserver(opts.Metrics))
		auditOpts = append(auditOpts, audit.WithHook(opts.Metrics.AuditRecorded))
	}

	flocks := collection.New[entity.Flock](blobs, repository.KeyFlocks, collOpts...)
	batches := collection.New[entity.Batch](blobs, repository.KeyBatches, collOpts...)
	feed := collection.New[entity.FeedItem](blobs, repository.KeyFeed, collOpts...)
	health := collection.New[entity.HealthRecord](blobs, repository.KeyHealthRecords, collOpts...)
	production := collection.New[entity.ProductionRecord](blobs, repository.KeyProductionRecords, collOpts...)
	items := collection.New[entity.InventoryItem](blobs, repository.KeyInventoryItems, collOpts...)
	txs := collection.New[entity.InventoryTransaction](blobs, repository.KeyInventoryTransactions, collOpts...)
	birdSales := collection.New[entity.BirdSale](blobs, repository.KeyBirdSales, collOpts...)
	eggSales := collection.New[entity.EggSale](blobs, repository.KeyEggSales, collOpts...)
	purchases := collection.New[entity.Purchase](blobs, repository.KeyPurchases, collOpts...)
	mortality := collection.New[entity.Mortality](blobs, repository.KeyMortality, collOpts...)
	customers := collection.New[entity.Customer](blobs, repository.KeyCustomers, collOpts...)
	invoices := collection.New[entity.Invoice](blobs, repository.KeyInvoices, collOpts...)
	users := collection.New[entity.User](blobs, repository.KeyUsers, collOpts...)
	auditLogs := collection.New[entity.AuditLog](blobs, repository.KeyAuditLogs, collOpts...)

	recorder := audit.NewRecorder(auditLogs, log.Named("audit"), auditOpts...)
	today := func() string { return entity.FormatDate(now()) }

	dashboard := appanalytics.NewDashboardUseCase(appanalytics.Sources{
		Flocks:     flocks,
		Batches:    batches,
		Feed:       feed,
		Health:     health,
		Production: production,
		Items:      items,
		BirdSales:  birdSales,
		EggSales:   eggSales,
		Purchases:  purchases,
		Mortality:  mortality,
		Customers:  customers,
		AuditLogs:  auditLogs,
	}).WithClock(now)

	return &Container{
		Blobs:         blobs,
		Log:           log,
		Audit:         recorder,
		Auth:          auth.NewAuthUseCase(users, recorder, opts.JWT, log.Named("auth")),
		Users:         usecase.NewUserUseCase(users, recorder),
		Flocks:        usecase.NewFlockUseCase(flocks, recorder),
		Batches:       usecase.NewBatchUseCase(batches, recorder),
		Mortality:     usecase.NewMortalityUseCase(mortality, recorder),
		Feed:          usecase.NewFeedUseCase(feed, recorder),
		Health:        usecase.NewHealthUseCase(health, recorder),
		Production:    usecase.NewProductionUseCase(production, recorder),
		BirdSales:     usecase.NewBirdSaleUseCase(birdSales, recorder),
		EggSales:      usecase.NewEggSaleUseCase(eggSales, recorder),
		Purchases:     usecase.NewPurchaseUseCase(purchases, recorder),
		Customers:     usecase.NewCustomerUseCase(customers, recorder),
		Items:         inventory.NewItemUseCase(items, recorder, today),
		Transactions:  inventory.NewTransactionUseCase(items, txs, recorder),
		Replenishment: inventory.NewReplenishmentUseCase(items, txs),
		Invoices: billing.NewInvoiceUseCase(invoices, billing.Sources{
			Customers: customers,
			EggSales:  eggSales,
			BirdSales: birdSales,
		}, recorder),
		InvoicePDF: billing.NewPDFUseCase(invoices, infrapdf.NewMarotoPDFGenerator(opts.FarmName)),
		Dashboard:  dashboard,
		Export:     report.NewExportUseCase(dashboard, recorder, blobs).WithClock(now),
		metrics:    opts.Metrics,
		now:        now,
	}
}

// RouterDeps dependencias del router HTTP.
func (c *Container) RouterDeps(jwtSecret string) httpRouter.RouterDeps {
	deps := httpRouter.RouterDeps{
		AuthUC:        c.Auth,
		UserUC:        c.Users,
		FlockUC:       c.Flocks,
		BatchUC:       c.Batches,
		MortalityUC:   c.Mortality,
		FeedUC:        c.Feed,
		HealthUC:      c.Health,
		ProductionUC:  c.Production,
		BirdSaleUC:    c.BirdSales,
		EggSaleUC:     c.EggSales,
		PurchaseUC:    c.Purchases,
		CustomerUC:    c.Customers,
		ItemUC:        c.Items,
		TransactionUC: c.Transactions,
		Replenishment: c.Replenishment,
		InvoiceUC:     c.Invoices,
		InvoicePDFUC:  c.InvoicePDF,
		Dashboard:     c.Dashboard,
		Export:        c.Export,
		Audit:         c.Audit,
		JWTSecret:     jwtSecret,
		Now:           c.now,
		Logger:        c.Log.Named("http"),
	}
	if c.metrics != nil {
		deps.Metrics = c.metrics.Registry
	}
	return deps
}
