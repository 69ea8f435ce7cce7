package postgres_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/infrastructure/postgres"
)

// fakeQuerier tabla collections en memoria; reconoce las sentencias por su prefijo.
type fakeQuerier struct {
	mu       sync.Mutex
	rows     map[string][]byte
	migrated bool
	failRead error
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{rows: map[string][]byte{}}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch stmt := strings.TrimSpace(sql); {
	case strings.HasPrefix(stmt, "CREATE TABLE"):
		f.migrated = true
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	case strings.HasPrefix(stmt, "INSERT INTO collections"):
		f.rows[args[0].(string)] = append([]byte(nil), args[1].([]byte)...)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	return pgconn.CommandTag{}, errors.New("sentencia no soportada: " + sql)
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRead != nil {
		return fakeRow{err: f.failRead}
	}
	payload, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{payload: payload}
}

type fakeRow struct {
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = append([]byte(nil), r.payload...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Put / Migrate
// ──────────────────────────────────────────────────────────────────────────────

func TestBlobStore_Migrate(t *testing.T) {
	q := newFakeQuerier()
	require.NoError(t, postgres.NewBlobStore(q).Migrate(context.Background()))
	assert.True(t, q.migrated)
}

func TestBlobStore_ClaveInexistenteDevuelveNil(t *testing.T) {
	st := postgres.NewBlobStore(newFakeQuerier())
	got, err := st.Get(context.Background(), "flocks")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlobStore_UpsertYLectura(t *testing.T) {
	ctx := context.Background()
	st := postgres.NewBlobStore(newFakeQuerier())

	require.NoError(t, st.Put(ctx, "flocks", []byte(`[{"id":"1"}]`)))
	require.NoError(t, st.Put(ctx, "flocks", []byte(`[{"id":"2"}]`)))

	got, err := st.Get(ctx, "flocks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"2"}]`, string(got))

	other, err := st.Get(ctx, "batches")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestBlobStore_ErrorDeLectura(t *testing.T) {
	q := newFakeQuerier()
	q.failRead = errors.New("conexión cerrada")
	_, err := postgres.NewBlobStore(q).Get(context.Background(), "flocks")
	require.Error(t, err)
	assert.False(t, errors.Is(err, pgx.ErrNoRows))
	assert.Contains(t, err.Error(), "flocks")
}
