// Package report serializa los datos del reporte financiero a CSV o a un documento HTML imprimible.
// Las funciones de formato son puras; ExportUseCase lee los datos y registra la exportación.
package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// BirdSalesCSV Date,Buyer,Quantity,Price Per Bird,Total Amount,Notes.
func BirdSalesCSV(sales []entity.BirdSale) ([]byte, error) {
	rows := make([][]string, 0, len(sales)+1)
	rows = append(rows, []string{"Date", "Buyer", "Quantity", "Price Per Bird", "Total Amount", "Notes"})
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date, s.Buyer, strconv.Itoa(s.Quantity), s.PricePerBird.String(), s.TotalAmount.String(), s.Notes,
		})
	}
	return writeCSV(rows)
}

// EggSalesCSV Date,Buyer,Quantity,Price Per Crate,Total Amount,Notes.
func EggSalesCSV(sales []entity.EggSale) ([]byte, error) {
	rows := make([][]string, 0, len(sales)+1)
	rows = append(rows, []string{"Date", "Buyer", "Quantity", "Price Per Crate", "Total Amount", "Notes"})
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date, s.Buyer, strconv.Itoa(s.Quantity), s.PricePerCrate.String(), s.TotalAmount.String(), s.Notes,
		})
	}
	return writeCSV(rows)
}

// MortalityCSV Date,Quantity,Cause,Notes.
func MortalityCSV(records []entity.Mortality) ([]byte, error) {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Date", "Quantity", "Cause", "Notes"})
	for _, m := range records {
		rows = append(rows, []string{m.Date, strconv.Itoa(m.Quantity), m.Cause, m.Notes})
	}
	return writeCSV(rows)
}

// PurchasesCSV Date,Item,Supplier,Quantity,Unit Price,Total Amount,Notes.
func PurchasesCSV(purchases []entity.Purchase) ([]byte, error) {
	rows := make([][]string, 0, len(purchases)+1)
	rows = append(rows, []string{"Date", "Item", "Supplier", "Quantity", "Unit Price", "Total Amount", "Notes"})
	for _, p := range purchases {
		rows = append(rows, []string{
			p.Date, p.Item, p.Supplier, p.Quantity.String(), p.UnitPrice.String(), p.TotalAmount.String(), p.Notes,
		})
	}
	return writeCSV(rows)
}

// SummaryCSV resumen financiero por secciones (Revenue, Expenses, Net Profit, Operations).
func SummaryCSV(s dto.FinancialSummaryDTO) ([]byte, error) {
	rows := [][]string{
		{"Financial Summary Report"},
		{"Date Range: " + s.StartDate + " to " + s.EndDate},
		{},
		{"Revenue"},
		{"Bird Sales Revenue", money(s.BirdRevenue)},
		{"Egg Sales Revenue", money(s.EggRevenue)},
		{"Total Revenue", money(s.TotalRevenue)},
		{},
		{"Expenses"},
		{"Total Purchases", money(s.TotalExpenses)},
		{},
		{"Net Profit", money(s.NetProfit)},
		{},
		{"Operations"},
		{"Birds Sold", strconv.Itoa(s.BirdsSold)},
		{"Egg Crates Sold", strconv.Itoa(s.EggsSold)},
		{"Total Mortality", strconv.Itoa(s.TotalMortality)},
	}
	return writeCSV(rows)
}

// writeCSV escribe con comillas RFC 4180: comas, comillas y saltos de línea en texto libre quedan escapados.
func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
