package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// BlobStore guarda cada colección serializada como una fila de la tabla collections.
type BlobStore struct {
	q Querier
}

// NewBlobStore construye el adaptador. Pasar pool o tx (Querier).
func NewBlobStore(q Querier) *BlobStore {
	return &BlobStore{q: q}
}

// Migrate crea la tabla si no existe.
func (s *BlobStore) Migrate(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear tabla collections: %w", err)
	}
	return nil
}

// Get devuelve el payload de key, o nil si no hay fila.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.q.QueryRow(ctx, `SELECT payload FROM collections WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select collection %s: %w", key, err)
	}
	return payload, nil
}

// Put reemplaza el payload de key (upsert).
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("upsert collection %s: %w", key, err)
	}
	return nil
}
