package report

import (
	"bytes"
	"html/template"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// Document documento imprimible: título, resumen y una tabla.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Summary     []SummaryItem
	Columns     []Column
	Rows        [][]string
	Footer      string
}

// SummaryItem par etiqueta/valor del bloque de resumen.
type SummaryItem struct {
	Label string
	Value string
}

// Column encabezado de tabla; Right alinea a la derecha (montos y cantidades).
type Column struct {
	Name  string
	Right bool
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
h1 { color: #333; border-bottom: 2px solid #333; padding-bottom: 10px; }
.summary { margin: 20px 0; padding: 15px; background: #f5f5f5; border-radius: 5px; }
.summary-item { display: inline-block; margin-right: 30px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
th { background-color: #333; color: white; }
tr:nth-child(even) { background-color: #f9f9f9; }
.text-right { text-align: right; }
.footer { margin-top: 30px; text-align: center; color: #666; font-size: 12px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated on: {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
{{- if .Summary}}
<div class="summary">
{{- range .Summary}}
<div class="summary-item"><strong>{{.Label}}:</strong> {{.Value}}</div>
{{- end}}
</div>
{{- end}}
{{- if .Columns}}
<table>
<thead>
<tr>{{range .Columns}}<th{{if .Right}} class="text-right"{{end}}>{{.Name}}</th>{{end}}</tr>
</thead>
<tbody>
{{- $cols := .Columns}}
{{- range .Rows}}
<tr>{{range $i, $v := .}}<td{{if (index $cols $i).Right}} class="text-right"{{end}}>{{$v}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
<div class="footer"><p>{{.Footer}}</p></div>
</body>
</html>
`))

// RenderHTML ejecuta la plantilla; el texto libre se escapa.
func RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BirdSalesDocument listado de ventas de aves, más reciente primero.
func BirdSalesDocument(sales []entity.BirdSale, now time.Time) Document {
	sales = sortedByDateDesc(sales, func(s entity.BirdSale) string { return s.Date })
	birds, revenue := 0, decimal.Zero
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		birds += s.Quantity
		revenue = revenue.Add(s.TotalAmount)
		rows = append(rows, []string{s.Date, s.Buyer, strconv.Itoa(s.Quantity), money(s.PricePerBird), money(s.TotalAmount), dash(s.Notes)})
	}
	return Document{
		Title:       "Bird Sales Report",
		GeneratedAt: now,
		Summary: []SummaryItem{
			{"Total Sales", strconv.Itoa(len(sales))},
			{"Total Birds", strconv.Itoa(birds)},
			{"Total Revenue", money(revenue)},
		},
		Columns: []Column{{"Date", false}, {"Buyer", false}, {"Quantity", true}, {"Price/Bird", true}, {"Total", true}, {"Notes", false}},
		Rows:    rows,
		Footer:  "Poultry Farm Management System - Bird Sales Report",
	}
}

// EggSalesDocument listado de ventas de huevos, más reciente primero.
func EggSalesDocument(sales []entity.EggSale, now time.Time) Document {
	sales = sortedByDateDesc(sales, func(s entity.EggSale) string { return s.Date })
	crates, revenue := 0, decimal.Zero
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		crates += s.Quantity
		revenue = revenue.Add(s.TotalAmount)
		rows = append(rows, []string{s.Date, s.Buyer, strconv.Itoa(s.Quantity), money(s.PricePerCrate), money(s.TotalAmount), dash(s.Notes)})
	}
	return Document{
		Title:       "Egg Sales Report",
		GeneratedAt: now,
		Summary: []SummaryItem{
			{"Total Sales", strconv.Itoa(len(sales))},
			{"Total Crates", strconv.Itoa(crates)},
			{"Total Revenue", money(revenue)},
		},
		Columns: []Column{{"Date", false}, {"Buyer", false}, {"Quantity", true}, {"Price/Crate", true}, {"Total", true}, {"Notes", false}},
		Rows:    rows,
		Footer:  "Poultry Farm Management System - Egg Sales Report",
	}
}

// MortalityDocument listado de mortalidad, más reciente primero.
func MortalityDocument(records []entity.Mortality, now time.Time) Document {
	records = sortedByDateDesc(records, func(m entity.Mortality) string { return m.Date })
	total := 0
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		total += m.Quantity
		rows = append(rows, []string{m.Date, strconv.Itoa(m.Quantity), m.Cause, dash(m.Notes)})
	}
	return Document{
		Title:       "Mortality Report",
		GeneratedAt: now,
		Summary:     []SummaryItem{{"Incidents", strconv.Itoa(len(records))}, {"Total Birds", strconv.Itoa(total)}},
		Columns:     []Column{{"Date", false}, {"Quantity", true}, {"Cause", false}, {"Notes", false}},
		Rows:        rows,
		Footer:      "Poultry Farm Management System - Mortality Report",
	}
}

// PurchasesDocument listado de compras, más reciente primero.
func PurchasesDocument(purchases []entity.Purchase, now time.Time) Document {
	purchases = sortedByDateDesc(purchases, func(p entity.Purchase) string { return p.Date })
	spent := decimal.Zero
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		spent = spent.Add(p.TotalAmount)
		rows = append(rows, []string{p.Date, p.Item, p.Supplier, p.Quantity.String(), money(p.UnitPrice), money(p.TotalAmount), dash(p.Notes)})
	}
	return Document{
		Title:       "Purchases Report",
		GeneratedAt: now,
		Summary:     []SummaryItem{{"Total Purchases", strconv.Itoa(len(purchases))}, {"Total Spent", money(spent)}},
		Columns: []Column{
			{"Date", false}, {"Item", false}, {"Supplier", false}, {"Quantity", true},
			{"Unit Price", true}, {"Total", true}, {"Notes", false},
		},
		Rows:   rows,
		Footer: "Poultry Farm Management System - Purchases Report",
	}
}

// SummaryDocument resumen financiero como tabla de dos columnas.
func SummaryDocument(s dto.FinancialSummaryDTO, now time.Time) Document {
	return Document{
		Title:       "Financial Summary Report",
		GeneratedAt: now,
		Summary:     []SummaryItem{{"Date Range", s.StartDate + " to " + s.EndDate}},
		Columns:     []Column{{"Concept", false}, {"Value", true}},
		Rows: [][]string{
			{"Bird Sales Revenue", money(s.BirdRevenue)},
			{"Egg Sales Revenue", money(s.EggRevenue)},
			{"Total Revenue", money(s.TotalRevenue)},
			{"Total Purchases", money(s.TotalExpenses)},
			{"Net Profit", money(s.NetProfit)},
			{"Birds Sold", strconv.Itoa(s.BirdsSold)},
			{"Egg Crates Sold", strconv.Itoa(s.EggsSold)},
			{"Total Mortality", strconv.Itoa(s.TotalMortality)},
		},
		Footer: "Poultry Farm Management System - Financial Summary",
	}
}

// sortedByDateDesc copia y ordena por fecha descendente (la fecha YYYY-MM-DD ordena como texto).
func sortedByDateDesc[T any](items []T, date func(T) string) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return date(out[i]) > date(out[j]) })
	return out
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
