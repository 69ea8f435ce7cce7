package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/inventory"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// InventoryHandler maneja las transacciones de inventario y sus reportes (protegido).
type InventoryHandler struct {
	uc            *inventory.TransactionUseCase
	replenishment *inventory.ReplenishmentUseCase
	log           *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.TransactionUseCase, replenishment *inventory.ReplenishmentUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment, log: log}
}

// ApplyTransaction godoc
// @Summary      Registrar entrada o salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del artículo"
// @Param        body  body  dto.InventoryTransactionRequest  true  "type (in|out), quantity, reason, date"
// @Success      201   {object}  entity.InventoryTransaction
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/transactions [post]
func (h *InventoryHandler) ApplyTransaction(c *fiber.Ctx) error {
	var in dto.InventoryTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tx, err := h.uc.Apply(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// ListTransactions GET /api/inventory/items/:id/transactions (más reciente primero).
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	list, err := h.uc.ListTransactions(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

// ListAllTransactions GET /api/inventory/transactions
func (h *InventoryHandler) ListAllTransactions(c *fiber.Ctx) error {
	list, err := h.uc.ListTransactions(c.UserContext(), "")
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(list))
}

// Reconcile godoc
// @Summary      Conciliar inventario contra el libro de transacciones
// @Description  Compara la cantidad almacenada con el movimiento neto registrado. No corrige nada.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ReconcileLineDTO]
// @Router       /api/inventory/reconcile [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	lines, err := h.uc.Reconcile(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewListResponse(lines))
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Artículos en o por debajo del nivel de reorden con la cantidad sugerida de pedido.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
