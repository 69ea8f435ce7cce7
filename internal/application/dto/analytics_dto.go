package dto

import "github.com/shopspring/decimal"

// FinancialSummaryDTO respuesta de GET /api/reports/summary?start_date=&end_date=.
// El rango es inclusivo en ambos extremos.
type FinancialSummaryDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	BirdRevenue   decimal.Decimal `json:"bird_revenue"`
	EggRevenue    decimal.Decimal `json:"egg_revenue"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"` // compras
	NetProfit     decimal.Decimal `json:"net_profit"`     // TotalRevenue - TotalExpenses

	BirdsSold      int `json:"birds_sold"`
	EggsSold       int `json:"eggs_sold"` // cubetas
	TotalMortality int `json:"total_mortality"`

	AvgPricePerBird  decimal.Decimal `json:"avg_price_per_bird"`  // BirdRevenue / BirdsSold
	AvgPricePerCrate decimal.Decimal `json:"avg_price_per_crate"` // EggRevenue / EggsSold

	BirdSaleCount  int `json:"bird_sale_count"`
	EggSaleCount   int `json:"egg_sale_count"`
	PurchaseCount  int `json:"purchase_count"`
	MortalityCount int `json:"mortality_count"`

	// Tendencia mensual, ordenada cronológicamente.
	MonthlyTrends []MonthlyTrendDTO `json:"monthly_trends"`
}

// MonthlyTrendDTO ingresos, gastos y utilidad de un mes.
type MonthlyTrendDTO struct {
	Month    string          `json:"month"` // YYYY-MM
	Label    string          `json:"label"` // ej: "Mar 2024"
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// ExportQuery parámetros de GET /api/reports/export/:kind.
type ExportQuery struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	Format    string `query:"format" validate:"omitempty,oneof=csv html"`
}
