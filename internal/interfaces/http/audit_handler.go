package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farm-ledger/internal/application/audit"
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// AuditHandler consulta la bitácora (solo admin).
type AuditHandler struct {
	recorder *audit.Recorder
	log      *logger.Logger
}

// NewAuditHandler construye el handler.
func NewAuditHandler(recorder *audit.Recorder, log *logger.Logger) *AuditHandler {
	return &AuditHandler{recorder: recorder, log: log}
}

// List godoc
// @Summary      Bitácora de auditoría
// @Description  Entradas más recientes primero. search filtra por usuario, acción o detalle.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        search  query     string  false  "texto a buscar (sin distinguir mayúsculas)"
// @Success      200     {object}  dto.ListResponse[entity.AuditLog]
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	logs, err := h.recorder.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(logs))
}
