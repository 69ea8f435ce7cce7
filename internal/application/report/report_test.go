package report_test

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/internal/application/report"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

// fakeSource aplica el filtro de rango igual que el caso de uso real.
type fakeSource struct {
	in        analytics.ReportInput
	err       error
	lastRange ledger.DateRange
}

func (f *fakeSource) ReportData(_ context.Context, r ledger.DateRange) (analytics.ReportInput, error) {
	f.lastRange = r
	if f.err != nil {
		return analytics.ReportInput{}, f.err
	}
	return f.in.Filter(r), nil
}

type auditEntry struct{ action, details string }

type spyAudit struct{ entries []auditEntry }

func (s *spyAudit) Record(_ context.Context, actor *entity.Actor, action, details string) error {
	if actor == nil {
		return nil
	}
	s.entries = append(s.entries, auditEntry{action, details})
	return nil
}

func sampleInput() analytics.ReportInput {
	return analytics.ReportInput{
		BirdSales: []entity.BirdSale{
			{Date: "2024-03-01", Quantity: 10, PricePerBird: d("12.5"), TotalAmount: d("125"), Buyer: "Acme, S.A.", Notes: "dijo \"gracias\""},
			{Date: "2024-02-01", Quantity: 3, PricePerBird: d("10"), TotalAmount: d("30"), Buyer: "Fuera"},
		},
		EggSales: []entity.EggSale{
			{Date: "2024-03-02", Quantity: 4, PricePerCrate: d("6"), TotalAmount: d("24"), Buyer: "Sol"},
			{Date: "2024-03-05", Quantity: 2, PricePerCrate: d("6"), TotalAmount: d("12"), Buyer: "<b>Luna</b>"},
		},
		Purchases: []entity.Purchase{
			{Date: "2024-03-03", Item: "Layer mash", Quantity: d("2.5"), UnitPrice: d("20"), TotalAmount: d("50"), Supplier: "AgroSur"},
		},
		Mortality: []entity.Mortality{{Date: "2024-03-04", Quantity: 2, Cause: "calor", Notes: "línea 1\nlínea 2"}},
	}
}

func parseCSV(t *testing.T, payload []byte) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(string(payload)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestBirdSalesCSV_EscapaTextoLibre(t *testing.T) {
	payload, err := report.BirdSalesCSV(sampleInput().BirdSales[:1])
	require.NoError(t, err)

	rows := parseCSV(t, payload)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "Buyer", "Quantity", "Price Per Bird", "Total Amount", "Notes"}, rows[0])
	assert.Equal(t, []string{"2024-03-01", "Acme, S.A.", "10", "12.5", "125", "dijo \"gracias\""}, rows[1])
}

func TestMortalityCSV_SaltoDeLineaEnNotas(t *testing.T) {
	payload, err := report.MortalityCSV(sampleInput().Mortality)
	require.NoError(t, err)

	rows := parseCSV(t, payload)
	require.Len(t, rows, 2)
	assert.Equal(t, "línea 1\nlínea 2", rows[1][3])
}

func TestSummaryCSV_Secciones(t *testing.T) {
	r, err := ledger.NewDateRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	s := analytics.FinancialSummary(sampleInput(), r)

	payload, err := report.SummaryCSV(s)
	require.NoError(t, err)
	text := string(payload)
	assert.Contains(t, text, "Date Range: 2024-03-01 to 2024-03-31")
	assert.Contains(t, text, "Bird Sales Revenue,$125.00")
	assert.Contains(t, text, "Egg Sales Revenue,$36.00")
	assert.Contains(t, text, "Total Revenue,$161.00")
	assert.Contains(t, text, "Total Purchases,$50.00")
	assert.Contains(t, text, "Net Profit,$111.00")
	assert.Contains(t, text, "Egg Crates Sold,6")
	assert.Contains(t, text, "Total Mortality,2")
}

// ──────────────────────────────────────────────────────────────────────────────
// HTML
// ──────────────────────────────────────────────────────────────────────────────

func TestEggSalesDocument_OrdenDescendenteYResumen(t *testing.T) {
	doc := report.EggSalesDocument(sampleInput().EggSales, now)

	assert.Equal(t, "Egg Sales Report", doc.Title)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "2024-03-05", doc.Rows[0][0])
	assert.Equal(t, "-", doc.Rows[0][5], "notas vacías se muestran como guion")
	assert.Equal(t, []report.SummaryItem{
		{Label: "Total Sales", Value: "2"},
		{Label: "Total Crates", Value: "6"},
		{Label: "Total Revenue", Value: "$36.00"},
	}, doc.Summary)
}

func TestRenderHTML_EscapaContenido(t *testing.T) {
	payload, err := report.RenderHTML(report.EggSalesDocument(sampleInput().EggSales, now))
	require.NoError(t, err)

	html := string(payload)
	assert.Contains(t, html, "<h1>Egg Sales Report</h1>")
	assert.Contains(t, html, "Generated on: 2024-03-10 09:30:00 UTC")
	assert.Contains(t, html, "&lt;b&gt;Luna&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Luna</b>")
	assert.Contains(t, html, "Poultry Farm Management System - Egg Sales Report")
}

// ──────────────────────────────────────────────────────────────────────────────
// ExportUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_FiltraPorRangoYAudita(t *testing.T) {
	src := &fakeSource{in: sampleInput()}
	audit := &spyAudit{}
	uc := report.NewExportUseCase(src, audit, nil).WithClock(func() time.Time { return now })
	actor := &entity.Actor{UserID: "u-1", Username: "ana"}

	art, err := uc.Export(context.Background(), actor, report.KindBirdSales, "", "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	assert.Equal(t, "bird-sales-2024-03-01-to-2024-03-31.csv", art.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", art.ContentType)
	rows := parseCSV(t, art.Payload)
	assert.Len(t, rows, 2, "la venta de febrero queda fuera")

	require.Len(t, audit.entries, 1)
	assert.Equal(t, entity.ActionExportReport, audit.entries[0].action)
	assert.Equal(t, "Exported bird-sales report (2024-03-01 to 2024-03-31) as csv", audit.entries[0].details)
}

func TestExport_HTML(t *testing.T) {
	uc := report.NewExportUseCase(&fakeSource{in: sampleInput()}, nil, nil).WithClock(func() time.Time { return now })

	art, err := uc.Export(context.Background(), nil, report.KindSummary, report.FormatHTML, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", art.ContentType)
	assert.Contains(t, string(art.Payload), "Financial Summary Report")
	assert.Contains(t, string(art.Payload), "$161.00")
}

func TestExport_EntradasInvalidas(t *testing.T) {
	uc := report.NewExportUseCase(&fakeSource{}, nil, nil)
	ctx := context.Background()

	_, err := uc.Export(ctx, nil, "flocks", "csv", "2024-03-01", "2024-03-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(ctx, nil, report.KindSummary, "pdf", "2024-03-01", "2024-03-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Export(ctx, nil, report.KindSummary, "csv", "2024-03-31", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_PropagaErrorDeLectura(t *testing.T) {
	boom := errors.New("disco lleno")
	uc := report.NewExportUseCase(&fakeSource{err: boom}, nil, nil)

	_, err := uc.Export(context.Background(), nil, report.KindSummary, "csv", "2024-03-01", "2024-03-31")
	assert.ErrorIs(t, err, boom)
}

func TestArchiveWeeklySummary_EscribeEnBlobStore(t *testing.T) {
	store := memory.NewStore()
	src := &fakeSource{in: sampleInput()}
	uc := report.NewExportUseCase(src, nil, store).WithClock(func() time.Time { return now })

	key, err := uc.ArchiveWeeklySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reports/summary-2024-03-10.csv", key)
	assert.Equal(t, "2024-03-03", entity.FormatDate(src.lastRange.Start))

	payload, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	// 2024-03-03 a 2024-03-10: huevos 12, compras 50; la venta de aves del 1 queda fuera.
	assert.Contains(t, string(payload), "Total Revenue,$12.00")
	assert.Contains(t, string(payload), "Total Purchases,$50.00")
}

func TestArchiveWeeklySummary_SinAlmacen(t *testing.T) {
	uc := report.NewExportUseCase(&fakeSource{}, nil, nil)
	_, err := uc.ArchiveWeeklySummary(context.Background())
	assert.Error(t, err)
}
