package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/report"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// ReportHandler resumen financiero y exportaciones descargables.
type ReportHandler struct {
	analytics *appanalytics.DashboardUseCase
	export    *report.ExportUseCase
	log       *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(analytics *appanalytics.DashboardUseCase, export *report.ExportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{analytics: analytics, export: export, log: log}
}

// Summary godoc
// @Summary      Resumen financiero
// @Description  Ingresos, gastos, utilidad y operaciones en el rango inclusivo, con tendencia mensual.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query     string  true  "YYYY-MM-DD"
// @Param        end_date    query     string  true  "YYYY-MM-DD"
// @Success      200         {object}  dto.FinancialSummaryDTO
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(q); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.analytics.FinancialSummary(c.UserContext(), q.StartDate, q.EndDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte
// @Description  kind: bird-sales, egg-sales, mortality, purchases, summary. format: csv (por defecto) o html imprimible.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Produce      text/html
// @Param        kind        path      string  true   "tipo de reporte"
// @Param        start_date  query     string  true   "YYYY-MM-DD"
// @Param        end_date    query     string  true   "YYYY-MM-DD"
// @Param        format      query     string  false  "csv | html"
// @Success      200         {file}    binary
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/reports/export/{kind} [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(q); err != nil {
		return writeError(c, h.log, err)
	}
	art, err := h.export.Export(c.UserContext(), GetActor(c), c.Params("kind"), q.Format, q.StartDate, q.EndDate)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, art.ContentType)
	if q.Format != report.FormatHTML {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+art.Filename+`"`)
	}
	return c.Send(art.Payload)
}
