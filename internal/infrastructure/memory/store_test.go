package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
)

func TestStore_GetClaveInexistente(t *testing.T) {
	s := memory.NewStore()
	data, err := s.Get(context.Background(), "batches")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_PutCopiaLosBytes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	buf := []byte(`[]`)
	require.NoError(t, s.Put(ctx, "batches", buf))
	buf[0] = 'X'

	data, err := s.Get(ctx, "batches")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "el almacén no comparte memoria con el llamador")
	assert.Equal(t, []string{"batches"}, s.Keys())
}
