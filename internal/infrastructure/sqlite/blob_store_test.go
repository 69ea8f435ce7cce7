package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/sqlite"
)

func TestBlobStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	data, err := store.Get(ctx, "batches")
	require.NoError(t, err)
	assert.Nil(t, data, "clave inexistente devuelve nil")

	require.NoError(t, store.Put(ctx, "batches", []byte(`[1]`)))
	require.NoError(t, store.Put(ctx, "batches", []byte(`[1,2]`)))

	data, err = store.Get(ctx, "batches")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data), "el segundo Put reemplaza al primero")
}

func TestBlobStore_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	customers := collection.New[entity.Customer](store, "customers")
	created, err := customers.Create(ctx, &entity.Actor{UserID: "u-1"}, entity.Customer{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := collection.New[entity.Customer](reopened, "customers").Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
}
