package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/farm-ledger/internal/application/analytics"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// DashboardHandler maneja los endpoints de vistas agregadas (dashboard y resúmenes por módulo).
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetStats godoc
// @Summary      Indicadores del dashboard
// @Description  Parvadas, aves, alimento, huevos y mortalidad de los últimos 7 días, incidentes
//
//	sanitarios de los últimos 30 días y valor del inventario.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.GetStats)
}

// CustomersRevenue GET /api/customers-revenue
func (h *DashboardHandler) CustomersRevenue(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.CustomersRevenue)
}

// CustomerRevenue godoc
// @Summary      Ingresos de un cliente
// @Description  Suma las ventas cuyo comprador coincide con el nombre del cliente (sin distinguir mayúsculas).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerRevenueDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/revenue [get]
func (h *DashboardHandler) CustomerRevenue(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.CustomerRevenue(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// BatchViews GET /api/batches-overview: lotes con tasa de mortalidad.
func (h *DashboardHandler) BatchViews(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.Batches)
}

// BatchSummary GET /api/summaries/batches
func (h *DashboardHandler) BatchSummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.BatchSummary)
}

// InventorySummary GET /api/summaries/inventory
func (h *DashboardHandler) InventorySummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.InventorySummary)
}

// FeedSummary GET /api/summaries/feed
func (h *DashboardHandler) FeedSummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.FeedSummary)
}

// HealthSummary GET /api/summaries/health
func (h *DashboardHandler) HealthSummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.HealthSummary)
}

// ProductionSummary GET /api/summaries/production
func (h *DashboardHandler) ProductionSummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.ProductionSummary)
}

// AuditSummary GET /api/summaries/audit (solo admin).
func (h *DashboardHandler) AuditSummary(c *fiber.Ctx) error {
	return respond(c, h.log, h.uc.AuditSummary)
}

// respond ejecuta una vista sin parámetros y serializa el resultado.
func respond[T any](c *fiber.Ctx, log *logger.Logger, view func(context.Context) (T, error)) error {
	out, err := view(c.UserContext())
	if err != nil {
		return writeError(c, log, err)
	}
	return c.JSON(out)
}
