package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
)

var admin = &entity.Actor{UserID: "admin-1", Username: "root", Role: entity.RoleAdmin}

func newUsers(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewUserUseCase(collection.New[entity.User](store, repository.KeyUsers), newRecorder(store))
}

func TestUsers_CrearYListar(t *testing.T) {
	ctx := context.Background()
	uc := newUsers(t)

	_, err := uc.Create(ctx, admin, dto.CreateUserRequest{Username: "zoe", Password: "clave123", Role: entity.RoleUser})
	require.NoError(t, err)
	_, err = uc.Create(ctx, admin, dto.CreateUserRequest{Username: "beto", Password: "clave123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	_, err = uc.Create(ctx, admin, dto.CreateUserRequest{Username: "ana", Password: "clave123", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = uc.Create(ctx, admin, dto.CreateUserRequest{Username: "ana", Password: "otra123", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, u := range list {
		names = append(names, u.Username)
	}
	assert.Equal(t, []string{"beto", "ana", "zoe"}, names, "administradores primero")
}

func TestUsers_UltimoAdministrador(t *testing.T) {
	ctx := context.Background()
	uc := newUsers(t)

	a, err := uc.Create(ctx, admin, dto.CreateUserRequest{Username: "beto", Password: "clave123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = uc.Update(ctx, admin, a.ID, dto.UpdateUserRequest{Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(ctx, admin, a.ID), domain.ErrConflict)

	self := &entity.Actor{UserID: a.ID, Username: "beto", Role: entity.RoleAdmin}
	assert.ErrorIs(t, uc.Delete(ctx, self, a.ID), domain.ErrConflict, "no puede eliminarse a sí mismo")
}

func TestUsers_ActualizarYEliminar(t *testing.T) {
	ctx := context.Background()
	uc := newUsers(t)

	u, err := uc.Create(ctx, admin, dto.CreateUserRequest{Username: "ana", Password: "clave123", Role: entity.RoleUser})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, admin, u.ID, dto.UpdateUserRequest{Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, upd.Role)

	_, err = uc.Update(ctx, admin, "nada", dto.UpdateUserRequest{Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.Delete(ctx, admin, "nada"))
	_, err = uc.Get(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
