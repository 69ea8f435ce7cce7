// Package sqlite persiste las colecciones en un archivo SQLite (driver puro Go de modernc).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS collections (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// BlobStore una fila por colección en la tabla collections.
type BlobStore struct {
	db *sqlx.DB
}

// Open abre (o crea) la base en path y aplica las migraciones.
func Open(ctx context.Context, path string) (*BlobStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	// SQLite admite un solo escritor.
	db.SetMaxOpenConns(1)

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migración sqlite: %w", err)
		}
	}
	return &BlobStore{db: db}, nil
}

// Get devuelve el payload de key, o nil si no existe.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := s.db.GetContext(ctx, &payload, `SELECT payload FROM collections WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select collection %s: %w", key, err)
	}
	return payload, nil
}

// Put reemplaza el payload de key.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *BlobStore) Close() error {
	return s.db.Close()
}
