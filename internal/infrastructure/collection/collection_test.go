package collection_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
)

var actor = &entity.Actor{UserID: "u-1", Username: "maria", Role: entity.RoleAdmin}

// failingStore falla los Put cuando fail es verdadero.
type failingStore struct {
	*memory.Store
	fail bool
}

func (s *failingStore) Put(ctx context.Context, key string, data []byte) error {
	if s.fail {
		return errors.New("disco lleno")
	}
	return s.Store.Put(ctx, key, data)
}

func newBatches(t *testing.T) *collection.Collection[entity.Batch, *entity.Batch] {
	t.Helper()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return collection.New[entity.Batch](memory.NewStore(), "batches", collection.WithClock(func() time.Time { return fixed }))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / List / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaSobreYAgregaAlFinal(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)

	a, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1", InitialQuantity: 100, CurrentQuantity: 100})
	require.NoError(t, err)
	b, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-2"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "ids únicos")
	assert.Equal(t, "u-1", a.CreatedBy)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), a.CreatedAt)

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "B-1", all[0].BatchNumber, "orden de inserción")
	assert.Equal(t, "B-2", all[1].BatchNumber)

	got, err := c.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a, *got)
}

func TestList_ColeccionVaciaNoEsNil(t *testing.T) {
	all, err := newBatches(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGet_Inexistente(t *testing.T) {
	got, err := newBatches(t).Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PreservaSobre(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)
	created, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1", CurrentQuantity: 100})
	require.NoError(t, err)

	upd := entity.Batch{BatchNumber: "B-1", CurrentQuantity: 90}
	upd.CreatedBy = "otro"
	got, found, err := c.Update(ctx, created.ID, upd)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "u-1", got.CreatedBy, "created_by no se puede sobrescribir")
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	stored, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stored.CurrentQuantity)
}

func TestUpdate_IdInexistenteNoEscribe(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)
	_, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1"})
	require.NoError(t, err)

	_, found, err := c.Update(ctx, "nope", entity.Batch{BatchNumber: "X"})
	require.NoError(t, err)
	assert.False(t, found)

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B-1", all[0].BatchNumber)
}

func TestRemove_Idempotente(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)
	a, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1"})
	require.NoError(t, err)
	_, err = c.Create(ctx, actor, entity.Batch{BatchNumber: "B-2"})
	require.NoError(t, err)

	require.NoError(t, c.Remove(ctx, a.ID))
	require.NoError(t, c.Remove(ctx, a.ID), "eliminar dos veces no falla")
	require.NoError(t, c.Remove(ctx, "nope"))

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B-2", all[0].BatchNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos de persistencia y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestPutFallido_NoCambiaElEstado(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: memory.NewStore()}
	c := collection.New[entity.Batch](store, "batches")
	_, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1"})
	require.NoError(t, err)

	store.fail = true
	_, err = c.Create(ctx, actor, entity.Batch{BatchNumber: "B-2"})
	assert.Error(t, err)

	store.fail = false
	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApply_ErrorNoEscribe(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)
	_, err := c.Create(ctx, actor, entity.Batch{BatchNumber: "B-1"})
	require.NoError(t, err)

	boom := errors.New("regla violada")
	err = c.Apply(ctx, func(items []entity.Batch) ([]entity.Batch, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreate_ConcurrenteNoPierdeEscrituras(t *testing.T) {
	ctx := context.Background()
	c := newBatches(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Create(ctx, actor, entity.Batch{BatchNumber: fmt.Sprintf("B-%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestObserver_RecibeOperaciones(t *testing.T) {
	obs := &recordingObserver{}
	c := collection.New[entity.Batch](memory.NewStore(), "batches", collection.WithObserver(obs))
	_, err := c.Create(context.Background(), actor, entity.Batch{})
	require.NoError(t, err)
	_, err = c.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"batches/create", "batches/list"}, obs.ops)
}

type recordingObserver struct {
	mu  sync.Mutex
	ops []string
}

func (o *recordingObserver) Observe(collection, op string, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, collection+"/"+op)
}
