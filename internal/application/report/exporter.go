package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// Tipos de reporte exportables.
const (
	KindBirdSales = "bird-sales"
	KindEggSales  = "egg-sales"
	KindMortality = "mortality"
	KindPurchases = "purchases"
	KindSummary   = "summary"
)

// Formatos de salida.
const (
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// ArchivePrefix prefijo de las claves de los resúmenes archivados en el BlobStore.
const ArchivePrefix = "reports/"

// Kinds tipos admitidos por Export, en el orden en que se listan.
var Kinds = []string{KindBirdSales, KindEggSales, KindMortality, KindPurchases, KindSummary}

// DataSource lee los registros del reporte ya filtrados por rango.
type DataSource interface {
	ReportData(ctx context.Context, r ledger.DateRange) (analytics.ReportInput, error)
}

// AuditRecorder puerto de la bitácora.
type AuditRecorder interface {
	Record(ctx context.Context, actor *entity.Actor, action, details string) error
}

// Artifact archivo generado listo para descargar o archivar.
type Artifact struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportUseCase genera los reportes descargables y archiva el resumen semanal.
type ExportUseCase struct {
	src   DataSource
	audit AuditRecorder
	blobs repository.BlobStore
	now   func() time.Time
}

// NewExportUseCase construye el caso de uso. blobs puede ser nil si no se archiva.
func NewExportUseCase(src DataSource, audit AuditRecorder, blobs repository.BlobStore) *ExportUseCase {
	return &ExportUseCase{src: src, audit: audit, blobs: blobs, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *ExportUseCase) WithClock(now func() time.Time) *ExportUseCase {
	uc.now = now
	return uc
}

// Export genera el reporte kind en el formato pedido para el rango inclusivo [start, end].
// Un format vacío equivale a CSV. Registra EXPORT_REPORT cuando hay actor.
func (uc *ExportUseCase) Export(ctx context.Context, actor *entity.Actor, kind, format, start, end string) (*Artifact, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatHTML {
		return nil, domain.NewValidationError("formato no soportado: "+format, "format")
	}
	if !knownKind(kind) {
		return nil, domain.NewValidationError("tipo de reporte no soportado: "+kind, "kind")
	}
	r, err := ledger.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	in, err := uc.src.ReportData(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("report: leer datos: %w", err)
	}

	payload, err := render(kind, format, in, r, uc.now())
	if err != nil {
		return nil, fmt.Errorf("report: generar %s: %w", kind, err)
	}
	art := &Artifact{
		Filename:    fmt.Sprintf("%s-%s-to-%s.%s", kind, start, end, format),
		ContentType: contentType(format),
		Payload:     payload,
	}
	if uc.audit != nil {
		_ = uc.audit.Record(ctx, actor, entity.ActionExportReport,
			fmt.Sprintf("Exported %s report (%s) as %s", kind, r, format))
	}
	return art, nil
}

// ArchiveWeeklySummary escribe el resumen CSV de los últimos días en reports/summary-YYYY-MM-DD.csv.
func (uc *ExportUseCase) ArchiveWeeklySummary(ctx context.Context) (string, error) {
	if uc.blobs == nil {
		return "", fmt.Errorf("report: sin almacén para archivar")
	}
	today := uc.now()
	r := ledger.TrailingDays(today, analytics.ProductionWindowDays)
	in, err := uc.src.ReportData(ctx, r)
	if err != nil {
		return "", fmt.Errorf("report: leer datos: %w", err)
	}
	payload, err := SummaryCSV(analytics.FinancialSummary(in, r))
	if err != nil {
		return "", err
	}
	key := ArchivePrefix + "summary-" + entity.FormatDate(r.End) + ".csv"
	if err := uc.blobs.Put(ctx, key, payload); err != nil {
		return "", fmt.Errorf("report: archivar %s: %w", key, err)
	}
	return key, nil
}

func render(kind, format string, in analytics.ReportInput, r ledger.DateRange, now time.Time) ([]byte, error) {
	if format == FormatHTML {
		return RenderHTML(document(kind, in, r, now))
	}
	switch kind {
	case KindBirdSales:
		return BirdSalesCSV(in.BirdSales)
	case KindEggSales:
		return EggSalesCSV(in.EggSales)
	case KindMortality:
		return MortalityCSV(in.Mortality)
	case KindPurchases:
		return PurchasesCSV(in.Purchases)
	default:
		return SummaryCSV(analytics.FinancialSummary(in, r))
	}
}

func document(kind string, in analytics.ReportInput, r ledger.DateRange, now time.Time) Document {
	switch kind {
	case KindBirdSales:
		return BirdSalesDocument(in.BirdSales, now)
	case KindEggSales:
		return EggSalesDocument(in.EggSales, now)
	case KindMortality:
		return MortalityDocument(in.Mortality, now)
	case KindPurchases:
		return PurchasesDocument(in.Purchases, now)
	default:
		return SummaryDocument(analytics.FinancialSummary(in, r), now)
	}
}

func knownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func contentType(format string) string {
	if format == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}
