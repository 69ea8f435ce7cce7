// Package memory implementa un BlobStore en memoria para tests y demos.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// Store mapa clave → bytes protegido por RWMutex. Guarda copias para que el llamador no comparta memoria.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ repository.BlobStore = (*Store)(nil)

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

// Keys claves almacenadas (sin orden).
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
