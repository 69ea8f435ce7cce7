package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Ventanas: producción y mortalidad de los últimos 7 días, sanidad de los últimos 30.
type DashboardStatsDTO struct {
	TotalFlocks        int             `json:"total_flocks"`
	ActiveFlocks       int             `json:"active_flocks"`
	TotalBirds         int             `json:"total_birds"`
	TotalFeedKg        decimal.Decimal `json:"total_feed_kg"`
	LowFeedItems       int             `json:"low_feed_items"` // < 100 kg
	WeeklyEggs         int             `json:"weekly_eggs"`
	WeeklyMortality    int             `json:"weekly_mortality"`
	RecentHealthIssues int             `json:"recent_health_issues"`
	LowStockItems      int             `json:"low_stock_items"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`

	// Serie diaria de la ventana de 7 días, ordenada por fecha.
	Production []DailyProductionDTO `json:"production"`
	DateLabel  string               `json:"date_label"` // ej: "2024-03-03 to 2024-03-10"
}

// DailyProductionDTO huevos y mortalidad de un día.
type DailyProductionDTO struct {
	Date      string `json:"date"`
	Eggs      int    `json:"eggs"`
	Mortality int    `json:"mortality"`
}

// CustomerRevenueDTO ingresos de un cliente por coincidencia de nombre con el comprador de las ventas.
type CustomerRevenueDTO struct {
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	BirdRevenue   decimal.Decimal `json:"bird_revenue"`
	EggRevenue    decimal.Decimal `json:"egg_revenue"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	BirdSaleCount int             `json:"bird_sale_count"`
	EggSaleCount  int             `json:"egg_sale_count"`
}

// CustomersRevenueDTO ingresos por cliente más el total de ventas atribuidas.
// Total cuenta cada venta una sola vez aunque varios clientes compartan nombre.
type CustomersRevenueDTO struct {
	Customers []CustomerRevenueDTO `json:"customers"`
	Total     decimal.Decimal      `json:"total"`
}

// BatchSummaryDTO resumen de los lotes.
type BatchSummaryDTO struct {
	TotalBatches  int     `json:"total_batches"`
	ActiveBatches int     `json:"active_batches"`
	InitialBirds  int     `json:"initial_birds"`
	CurrentBirds  int     `json:"current_birds"`
	MortalityRate float64 `json:"mortality_rate"` // % sobre la suma de cantidades iniciales
}

// FlockView parvada con su edad en semanas calculada al leer.
type FlockView struct {
	ID         string    `json:"id"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	Breed      string    `json:"breed"`
	Quantity   int       `json:"quantity"`
	HatchDate  string    `json:"hatch_date"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	AgeInWeeks int       `json:"age_in_weeks"`
}

// BatchView lote con su tasa de mortalidad derivada.
type BatchView struct {
	ID              string  `json:"id"`
	BatchNumber     string  `json:"batch_number"`
	BatchName       string  `json:"batch_name"`
	Breed           string  `json:"breed"`
	InitialQuantity int     `json:"initial_quantity"`
	CurrentQuantity int     `json:"current_quantity"`
	DateReceived    string  `json:"date_received"`
	AgeInWeeks      int     `json:"age_in_weeks"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
	MortalityRate   float64 `json:"mortality_rate"`
}

// InventorySummaryDTO totales del inventario.
type InventorySummaryDTO struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems int             `json:"low_stock_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	ByCategory    map[string]int  `json:"by_category"`
}

// FeedSummaryDTO totales de alimento.
type FeedSummaryDTO struct {
	TotalKg       decimal.Decimal `json:"total_kg"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockItems int             `json:"low_stock_items"`
	ExpiringItems int             `json:"expiring_items"` // vencen en ≤ 30 días
	ExpiredItems  int             `json:"expired_items"`
}

// HealthSummaryDTO registros sanitarios por tipo y costo total.
type HealthSummaryDTO struct {
	TotalRecords int             `json:"total_records"`
	ByType       map[string]int  `json:"by_type"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// ProductionSummaryDTO totales de producción.
type ProductionSummaryDTO struct {
	TotalRecords     int             `json:"total_records"`
	TotalEggs        int             `json:"total_eggs"`
	TotalMortality   int             `json:"total_mortality"`
	TotalFeedKg      decimal.Decimal `json:"total_feed_kg"`
	AvgEggsPerRecord float64         `json:"avg_eggs_per_record"`
}

// AuditSummaryDTO usuarios distintos y entradas del día.
type AuditSummaryDTO struct {
	TotalEntries int `json:"total_entries"`
	UniqueUsers  int `json:"unique_users"`
	TodayEntries int `json:"today_entries"`
}
