package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// RegistryService operaciones CRUD que expone un registro de entidades.
type RegistryService[T any, Req any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, actor *entity.Actor, req Req) (T, error)
	Update(ctx context.Context, actor *entity.Actor, id string, req Req) (T, error)
	Delete(ctx context.Context, actor *entity.Actor, id string) error
}

// RegistryHandler handler HTTP genérico para parvadas, lotes, ventas, compras, clientes, etc.
type RegistryHandler[T any, Req any, V any] struct {
	svc  RegistryService[T, Req]
	view func(T) V
	log  *logger.Logger
}

// NewRegistryHandler handler que responde los registros tal como se almacenan.
func NewRegistryHandler[T any, Req any](svc RegistryService[T, Req], log *logger.Logger) *RegistryHandler[T, Req, T] {
	return &RegistryHandler[T, Req, T]{svc: svc, view: func(t T) T { return t }, log: log}
}

// NewRegistryViewHandler handler que responde cada registro pasado por view (campos derivados).
func NewRegistryViewHandler[T any, Req any, V any](svc RegistryService[T, Req], view func(T) V, log *logger.Logger) *RegistryHandler[T, Req, V] {
	return &RegistryHandler[T, Req, V]{svc: svc, view: view, log: log}
}

// Mount registra GET /, GET /:id, POST /, PUT /:id y DELETE /:id en r.
func (h *RegistryHandler[T, Req, V]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// List GET / → dto.ListResponse en el orden almacenado.
func (h *RegistryHandler[T, Req, V]) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	out := make([]V, 0, len(items))
	for _, it := range items {
		out = append(out, h.view(it))
	}
	return c.JSON(dto.NewListResponse(out))
}

// Get GET /:id
func (h *RegistryHandler[T, Req, V]) Get(c *fiber.Ctx) error {
	rec, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(h.view(rec))
}

// Create POST /
func (h *RegistryHandler[T, Req, V]) Create(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.view(rec))
}

// Update PUT /:id
func (h *RegistryHandler[T, Req, V]) Update(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rec, err := h.svc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(h.view(rec))
}

// Delete DELETE /:id → 204 (también si el id ya no existe).
func (h *RegistryHandler[T, Req, V]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
