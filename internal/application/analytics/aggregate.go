package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
)

// Ventanas del dashboard, en días hacia atrás desde hoy (inclusivas).
const (
	ProductionWindowDays = 7
	HealthWindowDays     = 30
)

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRevenue suma las ventas cuyo comprador coincide con el nombre del cliente
// (sin distinguir mayúsculas ni espacios en los extremos).
func CustomerRevenue(c entity.Customer, birds []entity.BirdSale, eggs []entity.EggSale) dto.CustomerRevenueDTO {
	out := dto.CustomerRevenueDTO{
		CustomerID:   c.ID,
		CustomerName: c.Name,
		BirdRevenue:  decimal.Zero,
		EggRevenue:   decimal.Zero,
	}
	for _, s := range birds {
		if ledger.SameBuyer(s.Buyer, c.Name) {
			out.BirdRevenue = out.BirdRevenue.Add(s.TotalAmount)
			out.BirdSaleCount++
		}
	}
	for _, s := range eggs {
		if ledger.SameBuyer(s.Buyer, c.Name) {
			out.EggRevenue = out.EggRevenue.Add(s.TotalAmount)
			out.EggSaleCount++
		}
	}
	out.TotalRevenue = out.BirdRevenue.Add(out.EggRevenue)
	return out
}

// CustomersRevenue ingresos de cada cliente, en el orden almacenado.
// Clientes con el mismo nombre reciben las mismas ventas; Total cuenta cada venta una vez.
func CustomersRevenue(customers []entity.Customer, birds []entity.BirdSale, eggs []entity.EggSale) dto.CustomersRevenueDTO {
	out := dto.CustomersRevenueDTO{Customers: make([]dto.CustomerRevenueDTO, 0, len(customers)), Total: decimal.Zero}
	names := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		out.Customers = append(out.Customers, CustomerRevenue(c, birds, eggs))
		names[ledger.NormalizeName(c.Name)] = struct{}{}
	}
	for _, s := range birds {
		if _, ok := names[ledger.NormalizeName(s.Buyer)]; ok {
			out.Total = out.Total.Add(s.TotalAmount)
		}
	}
	for _, s := range eggs {
		if _, ok := names[ledger.NormalizeName(s.Buyer)]; ok {
			out.Total = out.Total.Add(s.TotalAmount)
		}
	}
	return out
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardInput snapshots leídos para el dashboard.
type DashboardInput struct {
	Flocks     []entity.Flock
	Feed       []entity.FeedItem
	Health     []entity.HealthRecord
	Production []entity.ProductionRecord
	Items      []entity.InventoryItem
}

// Dashboard calcula los indicadores; producción y mortalidad en [hoy−7, hoy], sanidad en [hoy−30, hoy].
func Dashboard(in DashboardInput, today time.Time) dto.DashboardStatsDTO {
	week := ledger.TrailingDays(today, ProductionWindowDays)
	month := ledger.TrailingDays(today, HealthWindowDays)

	out := dto.DashboardStatsDTO{
		TotalFlocks:    len(in.Flocks),
		TotalFeedKg:    decimal.Zero,
		InventoryValue: ledger.InventoryValue(in.Items),
		DateLabel:      week.String(),
	}
	for _, f := range in.Flocks {
		if f.Status == entity.FlockStatusActive {
			out.ActiveFlocks++
		}
		out.TotalBirds += f.Quantity
	}
	for _, f := range in.Feed {
		out.TotalFeedKg = out.TotalFeedKg.Add(f.QuantityKg)
		if ledger.IsLowFeed(f) {
			out.LowFeedItems++
		}
	}
	for _, h := range in.Health {
		if month.Contains(h.RecordDate) {
			out.RecentHealthIssues++
		}
	}
	for _, it := range in.Items {
		if ledger.IsLowStock(it) {
			out.LowStockItems++
		}
	}

	daily := make(map[string]*dto.DailyProductionDTO)
	for _, p := range in.Production {
		if !week.Contains(p.RecordDate) {
			continue
		}
		out.WeeklyEggs += p.EggsCollected
		out.WeeklyMortality += p.MortalityCount
		day, ok := daily[p.RecordDate]
		if !ok {
			day = &dto.DailyProductionDTO{Date: p.RecordDate}
			daily[p.RecordDate] = day
		}
		day.Eggs += p.EggsCollected
		day.Mortality += p.MortalityCount
	}
	out.Production = make([]dto.DailyProductionDTO, 0, len(daily))
	for _, day := range daily {
		out.Production = append(out.Production, *day)
	}
	sort.Slice(out.Production, func(i, j int) bool { return out.Production[i].Date < out.Production[j].Date })
	return out
}

// ── Parvadas y lotes ──────────────────────────────────────────────────────────

// ToFlockView agrega la edad de la parvada en semanas completas a la fecha de now.
func ToFlockView(f entity.Flock, now time.Time) dto.FlockView {
	return dto.FlockView{
		ID:         f.ID,
		CreatedBy:  f.CreatedBy,
		CreatedAt:  f.CreatedAt,
		Name:       f.Name,
		Breed:      f.Breed,
		Quantity:   f.Quantity,
		HatchDate:  f.HatchDate,
		Status:     f.Status,
		Notes:      f.Notes,
		AgeInWeeks: f.AgeInWeeks(now),
	}
}

// ToBatchView agrega la tasa de mortalidad del lote.
func ToBatchView(b entity.Batch) dto.BatchView {
	return dto.BatchView{
		ID:              b.ID,
		BatchNumber:     b.BatchNumber,
		BatchName:       b.BatchName,
		Breed:           b.Breed,
		InitialQuantity: b.InitialQuantity,
		CurrentQuantity: b.CurrentQuantity,
		DateReceived:    b.DateReceived,
		AgeInWeeks:      b.AgeInWeeks,
		Status:          b.Status,
		Notes:           b.Notes,
		MortalityRate:   ledger.MortalityRate(b.InitialQuantity, b.CurrentQuantity),
	}
}

// BatchSummary totales de todos los lotes; la tasa global usa la suma de cantidades iniciales.
func BatchSummary(batches []entity.Batch) dto.BatchSummaryDTO {
	out := dto.BatchSummaryDTO{TotalBatches: len(batches)}
	for _, b := range batches {
		if b.Status == entity.BatchStatusActive {
			out.ActiveBatches++
		}
		out.InitialBirds += b.InitialQuantity
		out.CurrentBirds += b.CurrentQuantity
	}
	out.MortalityRate = ledger.MortalityRate(out.InitialBirds, out.CurrentBirds)
	return out
}

// ── Resúmenes por registro ────────────────────────────────────────────────────

// InventorySummary artículos, stock bajo, valor total y conteo por categoría.
func InventorySummary(items []entity.InventoryItem) dto.InventorySummaryDTO {
	out := dto.InventorySummaryDTO{
		TotalItems: len(items),
		TotalValue: ledger.InventoryValue(items),
		ByCategory: make(map[string]int),
	}
	for _, it := range items {
		if ledger.IsLowStock(it) {
			out.LowStockItems++
		}
		out.ByCategory[it.Category]++
	}
	return out
}

// FeedSummary kilos, valor, stock bajo y vencimientos respecto de today.
func FeedSummary(feed []entity.FeedItem, today time.Time) dto.FeedSummaryDTO {
	out := dto.FeedSummaryDTO{TotalKg: decimal.Zero, TotalValue: decimal.Zero}
	for _, f := range feed {
		out.TotalKg = out.TotalKg.Add(f.QuantityKg)
		out.TotalValue = out.TotalValue.Add(ledger.LineTotal(f.QuantityKg, f.UnitPrice))
		if ledger.IsLowFeed(f) {
			out.LowStockItems++
		}
		switch {
		case ledger.IsExpired(f.ExpiryDate, today):
			out.ExpiredItems++
		case ledger.IsExpiring(f.ExpiryDate, today):
			out.ExpiringItems++
		}
	}
	return out
}

// HealthSummary conteo por tipo y costo total (los registros sin costo suman 0).
func HealthSummary(records []entity.HealthRecord) dto.HealthSummaryDTO {
	out := dto.HealthSummaryDTO{TotalRecords: len(records), ByType: make(map[string]int), TotalCost: decimal.Zero}
	for _, r := range records {
		out.ByType[r.RecordType]++
		if r.Cost != nil {
			out.TotalCost = out.TotalCost.Add(*r.Cost)
		}
	}
	return out
}

// ProductionSummary totales y promedio de huevos por registro.
func ProductionSummary(records []entity.ProductionRecord) dto.ProductionSummaryDTO {
	out := dto.ProductionSummaryDTO{TotalRecords: len(records), TotalFeedKg: decimal.Zero}
	for _, r := range records {
		out.TotalEggs += r.EggsCollected
		out.TotalMortality += r.MortalityCount
		out.TotalFeedKg = out.TotalFeedKg.Add(r.FeedConsumedKg)
	}
	if len(records) > 0 {
		out.AvgEggsPerRecord = float64(out.TotalEggs) / float64(len(records))
	}
	return out
}

// AuditSummary usuarios distintos y entradas con fecha de hoy (UTC).
func AuditSummary(logs []entity.AuditLog, today time.Time) dto.AuditSummaryDTO {
	out := dto.AuditSummaryDTO{TotalEntries: len(logs)}
	users := make(map[string]struct{})
	day := entity.FormatDate(today.UTC())
	for _, l := range logs {
		users[l.UserID] = struct{}{}
		if entity.FormatDate(l.Timestamp.UTC()) == day {
			out.TodayEntries++
		}
	}
	out.UniqueUsers = len(users)
	return out
}

// ── Reporte financiero ────────────────────────────────────────────────────────

// ReportInput registros que alimentan el reporte financiero.
type ReportInput struct {
	BirdSales []entity.BirdSale
	EggSales  []entity.EggSale
	Purchases []entity.Purchase
	Mortality []entity.Mortality
}

// Filter conserva los registros con fecha dentro de r (inclusivo). Fechas inválidas quedan fuera.
func (in ReportInput) Filter(r ledger.DateRange) ReportInput {
	return ReportInput{
		BirdSales: filter(in.BirdSales, func(s entity.BirdSale) bool { return r.Contains(s.Date) }),
		EggSales:  filter(in.EggSales, func(s entity.EggSale) bool { return r.Contains(s.Date) }),
		Purchases: filter(in.Purchases, func(p entity.Purchase) bool { return r.Contains(p.Date) }),
		Mortality: filter(in.Mortality, func(m entity.Mortality) bool { return r.Contains(m.Date) }),
	}
}

// FinancialSummary filtra por r y calcula ingresos, gastos, utilidad neta y operaciones.
func FinancialSummary(in ReportInput, r ledger.DateRange) dto.FinancialSummaryDTO {
	in = in.Filter(r)
	out := dto.FinancialSummaryDTO{
		StartDate:      entity.FormatDate(r.Start),
		EndDate:        entity.FormatDate(r.End),
		BirdRevenue:    decimal.Zero,
		EggRevenue:     decimal.Zero,
		TotalExpenses:  decimal.Zero,
		BirdSaleCount:  len(in.BirdSales),
		EggSaleCount:   len(in.EggSales),
		PurchaseCount:  len(in.Purchases),
		MortalityCount: len(in.Mortality),
	}
	for _, s := range in.BirdSales {
		out.BirdRevenue = out.BirdRevenue.Add(s.TotalAmount)
		out.BirdsSold += s.Quantity
	}
	for _, s := range in.EggSales {
		out.EggRevenue = out.EggRevenue.Add(s.TotalAmount)
		out.EggsSold += s.Quantity
	}
	for _, p := range in.Purchases {
		out.TotalExpenses = out.TotalExpenses.Add(p.TotalAmount)
	}
	for _, m := range in.Mortality {
		out.TotalMortality += m.Quantity
	}
	out.TotalRevenue = out.BirdRevenue.Add(out.EggRevenue)
	out.NetProfit = out.TotalRevenue.Sub(out.TotalExpenses)
	out.AvgPricePerBird = average(out.BirdRevenue, out.BirdsSold)
	out.AvgPricePerCrate = average(out.EggRevenue, out.EggsSold)
	out.MonthlyTrends = MonthlyTrends(in)
	return out
}

// MonthlyTrends agrupa ventas y compras por mes calendario, en orden cronológico.
// Los registros con fecha inválida se omiten.
func MonthlyTrends(in ReportInput) []dto.MonthlyTrendDTO {
	months := make(map[string]*dto.MonthlyTrendDTO)
	bucket := func(date string) *dto.MonthlyTrendDTO {
		t, err := entity.ParseDate(date)
		if err != nil {
			return nil
		}
		key := t.Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &dto.MonthlyTrendDTO{Month: key, Label: t.Format("Jan 2006"), Revenue: decimal.Zero, Expenses: decimal.Zero}
			months[key] = m
		}
		return m
	}
	for _, s := range in.BirdSales {
		if m := bucket(s.Date); m != nil {
			m.Revenue = m.Revenue.Add(s.TotalAmount)
		}
	}
	for _, s := range in.EggSales {
		if m := bucket(s.Date); m != nil {
			m.Revenue = m.Revenue.Add(s.TotalAmount)
		}
	}
	for _, p := range in.Purchases {
		if m := bucket(p.Date); m != nil {
			m.Expenses = m.Expenses.Add(p.TotalAmount)
		}
	}
	out := make([]dto.MonthlyTrendDTO, 0, len(months))
	for _, m := range months {
		m.Profit = m.Revenue.Sub(m.Expenses)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func average(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
