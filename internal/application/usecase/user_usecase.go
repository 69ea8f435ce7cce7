package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin). Las contraseñas se guardan con bcrypt.
type UserUseCase struct {
	repo  repository.Collection[entity.User]
	audit AuditRecorder
	now   func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.Collection[entity.User], audit AuditRecorder) *UserUseCase {
	return &UserUseCase{repo: repo, audit: audit, now: time.Now}
}

// List usuarios con los administradores primero y luego por nombre.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		ai, aj := users[i].Role == entity.RoleAdmin, users[j].Role == entity.RoleAdmin
		if ai != aj {
			return ai
		}
		return users[i].Username < users[j].Username
	})
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Get obtiene un usuario por ID.
func (uc *UserUseCase) Get(ctx context.Context, id string) (dto.UserResponse, error) {
	u, err := uc.repo.Get(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if u == nil {
		return dto.UserResponse{}, domain.ErrUserNotFound
	}
	return dto.NewUserResponse(*u), nil
}

// Create crea un usuario. ErrDuplicate si el username ya existe (distingue mayúsculas).
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.Actor, in dto.CreateUserRequest) (dto.UserResponse, error) {
	if actor == nil {
		return dto.UserResponse{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return dto.UserResponse{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}
	user := entity.User{
		Meta:         entity.Meta{ID: uuid.New().String(), CreatedBy: actor.UserID, CreatedAt: uc.now().UTC()},
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	err = uc.repo.Apply(ctx, func(items []entity.User) ([]entity.User, error) {
		for _, u := range items {
			if u.Username == in.Username {
				return nil, domain.ErrDuplicate
			}
		}
		return append(items, user), nil
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	_ = uc.audit.Record(ctx, actor, entity.AuditAction(entity.VerbCreate, "USER"), "Created user: "+user.Username)
	return dto.NewUserResponse(user), nil
}

// Update cambia el rol y opcionalmente la contraseña. No permite dejar el sistema sin administradores.
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.Actor, id string, in dto.UpdateUserRequest) (dto.UserResponse, error) {
	if actor == nil {
		return dto.UserResponse{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return dto.UserResponse{}, err
	}
	var hash []byte
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return dto.UserResponse{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}
	var updated entity.User
	err := uc.repo.Apply(ctx, func(items []entity.User) ([]entity.User, error) {
		i := indexOfUser(items, id)
		if i < 0 {
			return nil, domain.ErrUserNotFound
		}
		if items[i].Role == entity.RoleAdmin && in.Role != entity.RoleAdmin && countAdmins(items) <= 1 {
			return nil, fmt.Errorf("%w: debe existir al menos un administrador", domain.ErrConflict)
		}
		items[i].Role = in.Role
		if hash != nil {
			items[i].PasswordHash = string(hash)
		}
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	_ = uc.audit.Record(ctx, actor, entity.AuditAction(entity.VerbUpdate, "USER"), "Updated user: "+updated.Username)
	return dto.NewUserResponse(updated), nil
}

// Delete elimina un usuario. No se puede eliminar a sí mismo ni al último administrador.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.Actor, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if actor.UserID == id {
		return fmt.Errorf("%w: no puede eliminar su propio usuario", domain.ErrConflict)
	}
	var removed *entity.User
	err := uc.repo.Apply(ctx, func(items []entity.User) ([]entity.User, error) {
		i := indexOfUser(items, id)
		if i < 0 {
			return items, nil
		}
		if items[i].Role == entity.RoleAdmin && countAdmins(items) <= 1 {
			return nil, fmt.Errorf("%w: debe existir al menos un administrador", domain.ErrConflict)
		}
		u := items[i]
		removed = &u
		return append(items[:i:i], items[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	if removed != nil {
		_ = uc.audit.Record(ctx, actor, entity.AuditAction(entity.VerbDelete, "USER"), "Deleted user: "+removed.Username)
	}
	return nil
}

func indexOfUser(items []entity.User, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func countAdmins(items []entity.User) int {
	n := 0
	for _, u := range items {
		if u.Role == entity.RoleAdmin {
			n++
		}
	}
	return n
}
