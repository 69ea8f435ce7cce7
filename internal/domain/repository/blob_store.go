package repository

import "context"

// BlobStore puerto de persistencia de colecciones serializadas completas.
// Get devuelve nil (sin error) cuando la clave no existe.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
