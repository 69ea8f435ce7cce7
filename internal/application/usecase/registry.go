package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// AuditRecorder puerto de la bitácora. Las fallas se registran en el log y no abortan la operación.
type AuditRecorder interface {
	Record(ctx context.Context, actor *entity.Actor, action, details string) error
}

// RegistryDef describe un registro de entidades: cómo construir el registro desde la petición
// y cómo nombrarlo en la auditoría.
type RegistryDef[T any, Req any] struct {
	Subject string // sufijo de la acción: CREATE_<Subject>
	Noun    string // "batch" → "Created batch: B-001"
	// Build valida reglas de negocio y calcula campos derivados. existing es nil al crear.
	Build    func(req Req, existing *T) (T, error)
	Describe func(rec T) string
}

// Registry casos de uso CRUD genéricos con validación, derivación y auditoría.
type Registry[T any, Req any] struct {
	repo  repository.Collection[T]
	audit AuditRecorder
	def   RegistryDef[T, Req]
}

// NewRegistry construye el caso de uso.
func NewRegistry[T any, Req any](repo repository.Collection[T], audit AuditRecorder, def RegistryDef[T, Req]) *Registry[T, Req] {
	return &Registry[T, Req]{repo: repo, audit: audit, def: def}
}

// List devuelve todos los registros en el orden almacenado.
func (r *Registry[T, Req]) List(ctx context.Context) ([]T, error) {
	return r.repo.List(ctx)
}

// Get obtiene un registro por ID. ErrNotFound si no existe.
func (r *Registry[T, Req]) Get(ctx context.Context, id string) (T, error) {
	rec, err := r.repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if rec == nil {
		var zero T
		return zero, domain.ErrNotFound
	}
	return *rec, nil
}

// Create valida la petición, calcula derivados y persiste.
func (r *Registry[T, Req]) Create(ctx context.Context, actor *entity.Actor, req Req) (T, error) {
	var zero T
	if actor == nil {
		return zero, domain.ErrUnauthorized
	}
	rec, err := r.build(req, nil)
	if err != nil {
		return zero, err
	}
	created, err := r.repo.Create(ctx, actor, rec)
	if err != nil {
		return zero, err
	}
	r.record(ctx, actor, entity.VerbCreate, created)
	return created, nil
}

// Update reemplaza el registro id. ErrNotFound si no existe.
func (r *Registry[T, Req]) Update(ctx context.Context, actor *entity.Actor, id string, req Req) (T, error) {
	var zero T
	if actor == nil {
		return zero, domain.ErrUnauthorized
	}
	existing, err := r.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if existing == nil {
		return zero, domain.ErrNotFound
	}
	rec, err := r.build(req, existing)
	if err != nil {
		return zero, err
	}
	updated, found, err := r.repo.Update(ctx, id, rec)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, domain.ErrNotFound
	}
	r.record(ctx, actor, entity.VerbUpdate, updated)
	return updated, nil
}

// Delete elimina el registro id. Eliminar un id inexistente no es error.
func (r *Registry[T, Req]) Delete(ctx context.Context, actor *entity.Actor, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	existing, err := r.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err := r.repo.Remove(ctx, id); err != nil {
		return err
	}
	r.record(ctx, actor, entity.VerbDelete, *existing)
	return nil
}

func (r *Registry[T, Req]) build(req Req, existing *T) (T, error) {
	if err := dto.Validate(req); err != nil {
		var zero T
		return zero, err
	}
	return r.def.Build(req, existing)
}

func (r *Registry[T, Req]) record(ctx context.Context, actor *entity.Actor, verb string, rec T) {
	if r.audit == nil {
		return
	}
	details := fmt.Sprintf("%s %s: %s", pastTense(verb), r.def.Noun, r.def.Describe(rec))
	_ = r.audit.Record(ctx, actor, entity.AuditAction(verb, r.def.Subject), details)
}

func pastTense(verb string) string {
	switch verb {
	case entity.VerbCreate:
		return "Created"
	case entity.VerbUpdate:
		return "Updated"
	case entity.VerbDelete:
		return "Deleted"
	}
	return verb
}
