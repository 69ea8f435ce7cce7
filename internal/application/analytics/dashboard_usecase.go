// Package analytics contiene las vistas de solo lectura que cruzan varios registros:
// dashboard, ingresos por cliente, resumen de lotes y reporte financiero.
//
// Cada llamada relee los snapshots completos; no hay caché ni cálculo incremental.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// Sources colecciones leídas por las vistas. Ninguna se escribe desde aquí.
type Sources struct {
	Flocks     repository.Lister[entity.Flock]
	Batches    repository.Lister[entity.Batch]
	Feed       repository.Lister[entity.FeedItem]
	Health     repository.Lister[entity.HealthRecord]
	Production repository.Lister[entity.ProductionRecord]
	Items      repository.Lister[entity.InventoryItem]
	BirdSales  repository.Lister[entity.BirdSale]
	EggSales   repository.Lister[entity.EggSale]
	Purchases  repository.Lister[entity.Purchase]
	Mortality  repository.Lister[entity.Mortality]
	Customers  repository.Lister[entity.Customer]
	AuditLogs  repository.Lister[entity.AuditLog]
}

// DashboardUseCase vistas agregadas del dashboard y de cada módulo.
type DashboardUseCase struct {
	src Sources
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources) *DashboardUseCase {
	return &DashboardUseCase{src: src, now: time.Now}
}

// WithClock fija el reloj usado como "hoy" (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetStats construye el DashboardStatsDTO.
//
// Las cinco colecciones se leen en paralelo; cualquier error aborta la vista.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var in DashboardInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { in.Flocks, err = load(gctx, "parvadas", uc.src.Flocks); return })
	g.Go(func() (err error) { in.Feed, err = load(gctx, "alimento", uc.src.Feed); return })
	g.Go(func() (err error) { in.Health, err = load(gctx, "sanidad", uc.src.Health); return })
	g.Go(func() (err error) { in.Production, err = load(gctx, "producción", uc.src.Production); return })
	g.Go(func() (err error) { in.Items, err = load(gctx, "inventario", uc.src.Items); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats := Dashboard(in, uc.now())
	return &stats, nil
}

// CustomerRevenue ingresos atribuidos al cliente id. ErrNotFound si no existe.
func (uc *DashboardUseCase) CustomerRevenue(ctx context.Context, customerID string) (*dto.CustomerRevenueDTO, error) {
	customers, birds, eggs, err := uc.loadSales(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == customerID {
			out := CustomerRevenue(c, birds, eggs)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CustomersRevenue ingresos de todos los clientes.
func (uc *DashboardUseCase) CustomersRevenue(ctx context.Context) (*dto.CustomersRevenueDTO, error) {
	customers, birds, eggs, err := uc.loadSales(ctx)
	if err != nil {
		return nil, err
	}
	out := CustomersRevenue(customers, birds, eggs)
	return &out, nil
}

// Batches lotes con su tasa de mortalidad.
func (uc *DashboardUseCase) Batches(ctx context.Context) ([]dto.BatchView, error) {
	batches, err := load(ctx, "lotes", uc.src.Batches)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchView, 0, len(batches))
	for _, b := range batches {
		out = append(out, ToBatchView(b))
	}
	return out, nil
}

// BatchSummary totales de lotes.
func (uc *DashboardUseCase) BatchSummary(ctx context.Context) (*dto.BatchSummaryDTO, error) {
	batches, err := load(ctx, "lotes", uc.src.Batches)
	if err != nil {
		return nil, err
	}
	out := BatchSummary(batches)
	return &out, nil
}

// InventorySummary totales del inventario.
func (uc *DashboardUseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	items, err := load(ctx, "inventario", uc.src.Items)
	if err != nil {
		return nil, err
	}
	out := InventorySummary(items)
	return &out, nil
}

// FeedSummary totales de alimento.
func (uc *DashboardUseCase) FeedSummary(ctx context.Context) (*dto.FeedSummaryDTO, error) {
	feed, err := load(ctx, "alimento", uc.src.Feed)
	if err != nil {
		return nil, err
	}
	out := FeedSummary(feed, uc.now())
	return &out, nil
}

// HealthSummary totales sanitarios.
func (uc *DashboardUseCase) HealthSummary(ctx context.Context) (*dto.HealthSummaryDTO, error) {
	records, err := load(ctx, "sanidad", uc.src.Health)
	if err != nil {
		return nil, err
	}
	out := HealthSummary(records)
	return &out, nil
}

// ProductionSummary totales de producción.
func (uc *DashboardUseCase) ProductionSummary(ctx context.Context) (*dto.ProductionSummaryDTO, error) {
	records, err := load(ctx, "producción", uc.src.Production)
	if err != nil {
		return nil, err
	}
	out := ProductionSummary(records)
	return &out, nil
}

// AuditSummary totales de la bitácora.
func (uc *DashboardUseCase) AuditSummary(ctx context.Context) (*dto.AuditSummaryDTO, error) {
	logs, err := load(ctx, "auditoría", uc.src.AuditLogs)
	if err != nil {
		return nil, err
	}
	out := AuditSummary(logs, uc.now())
	return &out, nil
}

// ReportData lee ventas, compras y mortalidad y las filtra por r.
func (uc *DashboardUseCase) ReportData(ctx context.Context, r ledger.DateRange) (ReportInput, error) {
	var in ReportInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { in.BirdSales, err = load(gctx, "ventas de aves", uc.src.BirdSales); return })
	g.Go(func() (err error) { in.EggSales, err = load(gctx, "ventas de huevos", uc.src.EggSales); return })
	g.Go(func() (err error) { in.Purchases, err = load(gctx, "compras", uc.src.Purchases); return })
	g.Go(func() (err error) { in.Mortality, err = load(gctx, "mortalidad", uc.src.Mortality); return })
	if err := g.Wait(); err != nil {
		return ReportInput{}, err
	}
	return in.Filter(r), nil
}

// FinancialSummary resumen financiero del rango inclusivo [start, end] (YYYY-MM-DD).
func (uc *DashboardUseCase) FinancialSummary(ctx context.Context, start, end string) (*dto.FinancialSummaryDTO, error) {
	r, err := ledger.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	in, err := uc.ReportData(ctx, r)
	if err != nil {
		return nil, err
	}
	out := FinancialSummary(in, r)
	return &out, nil
}

// Today fecha de hoy según el reloj del caso de uso.
func (uc *DashboardUseCase) Today() time.Time {
	return entity.CivilDate(uc.now())
}

func (uc *DashboardUseCase) loadSales(ctx context.Context) ([]entity.Customer, []entity.BirdSale, []entity.EggSale, error) {
	var (
		customers []entity.Customer
		birds     []entity.BirdSale
		eggs      []entity.EggSale
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { customers, err = load(gctx, "clientes", uc.src.Customers); return })
	g.Go(func() (err error) { birds, err = load(gctx, "ventas de aves", uc.src.BirdSales); return })
	g.Go(func() (err error) { eggs, err = load(gctx, "ventas de huevos", uc.src.EggSales); return })
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return customers, birds, eggs, nil
}

func load[T any](ctx context.Context, what string, src repository.Lister[T]) ([]T, error) {
	items, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: leer %s: %w", what, err)
	}
	return items, nil
}
