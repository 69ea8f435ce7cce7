package mongo_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	drivermongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/farm-ledger/internal/infrastructure/mongo"
)

// fakeCollection documentos en memoria indexados por _id.
type fakeCollection struct {
	mu      sync.Mutex
	docs    map[string]bson.M
	upserts []bool
	failPut error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: map[string]bson.M{}}
}

func idOf(filter interface{}) string {
	id, _ := filter.(bson.M)["_id"].(string)
	return id
}

func (f *fakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *drivermongo.SingleResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[idOf(filter)]
	if !ok {
		return drivermongo.NewSingleResultFromDocument(bson.M{}, drivermongo.ErrNoDocuments, nil)
	}
	return drivermongo.NewSingleResultFromDocument(doc, nil, nil)
}

func (f *fakeCollection) ReplaceOne(_ context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*drivermongo.UpdateResult, error) {
	if f.failPut != nil {
		return nil, f.failPut
	}
	raw, err := bson.Marshal(replacement)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	upsert := false
	for _, o := range opts {
		if o != nil && o.Upsert != nil {
			upsert = *o.Upsert
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, upsert)
	f.docs[idOf(filter)] = doc
	return &drivermongo.UpdateResult{UpsertedCount: 1}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Put
// ──────────────────────────────────────────────────────────────────────────────

func TestBlobStore_ClaveInexistenteDevuelveNil(t *testing.T) {
	st := mongo.NewWithCollection(newFakeCollection())
	got, err := st.Get(context.Background(), "flocks")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlobStore_UpsertYLectura(t *testing.T) {
	ctx := context.Background()
	coll := newFakeCollection()
	st := mongo.NewWithCollection(coll)

	require.NoError(t, st.Put(ctx, "flocks", []byte(`[{"id":"1"}]`)))
	require.NoError(t, st.Put(ctx, "flocks", []byte(`[{"id":"2"}]`)))

	got, err := st.Get(ctx, "flocks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"2"}]`, string(got))
	assert.Equal(t, []bool{true, true}, coll.upserts, "siempre con upsert")
	assert.Contains(t, coll.docs["flocks"], "updated_at")

	other, err := st.Get(ctx, "batches")
	require.NoError(t, err)
	assert.Nil(t, other, "las claves no se mezclan")
}

func TestBlobStore_ErrorDeEscritura(t *testing.T) {
	coll := newFakeCollection()
	coll.failPut = errors.New("sin conexión")
	st := mongo.NewWithCollection(coll)

	err := st.Put(context.Background(), "flocks", []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flocks")
	assert.NoError(t, st.Close(context.Background()), "sin cliente propio no hay nada que cerrar")
}
