// Package collection implementa el registro genérico de entidades sobre un BlobStore:
// cada operación lee la colección completa, la modifica y la vuelve a escribir entera.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// Record restringe T a tipos que embeben entity.Meta.
type Record[T any] interface {
	*T
	Base() *entity.Meta
}

// Observer recibe el resultado de cada operación (métricas).
type Observer interface {
	Observe(collection, op string, err error)
}

type options struct {
	now      func() time.Time
	newID    func() string
	log      *logger.Logger
	observer Observer
}

// Option configura una colección.
type Option func(*options)

// WithClock fija el reloj usado para created_at.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithIDGenerator reemplaza la generación de ids (UUIDv4 por defecto).
func WithIDGenerator(f func() string) Option { return func(o *options) { o.newID = f } }

// WithLogger registra los fallos de persistencia.
func WithLogger(l *logger.Logger) Option { return func(o *options) { o.log = l } }

// WithObserver agrega un observador de operaciones.
func WithObserver(obs Observer) Option { return func(o *options) { o.observer = obs } }

// errUnchanged indica a Apply que no hay nada que escribir.
var errUnchanged = errors.New("collection: sin cambios")

// Collection registro de entidades de tipo T persistido bajo una clave.
type Collection[T any, P Record[T]] struct {
	key   string
	blobs repository.BlobStore
	opts  options
	mu    sync.Mutex // serializa lectura-modificación-escritura dentro del proceso
}

var _ repository.Collection[entity.Batch] = (*Collection[entity.Batch, *entity.Batch])(nil)

// New construye la colección key sobre blobs.
func New[T any, P Record[T]](blobs repository.BlobStore, key string, opts ...Option) *Collection[T, P] {
	o := options{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T, P]{key: key, blobs: blobs, opts: o}
}

// Key clave de persistencia de la colección.
func (c *Collection[T, P]) Key() string { return c.key }

// List devuelve el snapshot completo en el orden almacenado.
func (c *Collection[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := c.load(ctx)
	c.observe("list", err)
	return items, err
}

// Get devuelve el registro con id, o nil si no existe.
func (c *Collection[T, P]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.load(ctx)
	c.observe("get", err)
	if err != nil {
		return nil, err
	}
	if i, ok := index[T, P](items)[id]; ok {
		rec := items[i]
		return &rec, nil
	}
	return nil, nil
}

// Create asigna id, created_by y created_at y agrega el registro al final.
func (c *Collection[T, P]) Create(ctx context.Context, actor *entity.Actor, rec T) (T, error) {
	m := P(&rec).Base()
	if m.ID == "" {
		m.ID = c.opts.newID()
	}
	m.CreatedBy = actor.ID()
	m.CreatedAt = c.opts.now().UTC()

	err := c.apply(ctx, "create", func(items []T) ([]T, error) {
		return append(items, rec), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update reemplaza el registro id conservando su sobre. found=false cuando no existe (no escribe).
func (c *Collection[T, P]) Update(ctx context.Context, id string, rec T) (T, bool, error) {
	found := false
	err := c.apply(ctx, "update", func(items []T) ([]T, error) {
		i, ok := index[T, P](items)[id]
		if !ok {
			return nil, errUnchanged
		}
		old := P(&items[i]).Base()
		m := P(&rec).Base()
		m.ID, m.CreatedBy, m.CreatedAt = old.ID, old.CreatedBy, old.CreatedAt
		items[i] = rec
		found = true
		return items, nil
	})
	if err != nil || !found {
		var zero T
		return zero, false, err
	}
	return rec, true, nil
}

// Remove elimina el registro id; no hace nada si no existe.
func (c *Collection[T, P]) Remove(ctx context.Context, id string) error {
	return c.apply(ctx, "remove", func(items []T) ([]T, error) {
		if _, ok := index[T, P](items)[id]; !ok {
			return nil, errUnchanged
		}
		out := make([]T, 0, len(items)-1)
		for i := range items {
			if P(&items[i]).Base().ID != id {
				out = append(out, items[i])
			}
		}
		return out, nil
	})
}

// Apply ejecuta fn sobre el snapshot actual y persiste lo que devuelva.
func (c *Collection[T, P]) Apply(ctx context.Context, fn func(items []T) ([]T, error)) error {
	return c.apply(ctx, "apply", fn)
}

func (c *Collection[T, P]) apply(ctx context.Context, op string, fn func(items []T) ([]T, error)) (err error) {
	defer func() { c.observe(op, err) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	out, err := fn(items)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.save(ctx, op, out)
}

func (c *Collection[T, P]) load(ctx context.Context) ([]T, error) {
	data, err := c.blobs.Get(ctx, c.key)
	if err != nil {
		c.logFailure("load", err)
		return nil, fmt.Errorf("leer colección %s: %w", c.key, err)
	}
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		c.logFailure("decode", err)
		return nil, fmt.Errorf("decodificar colección %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T, P]) save(ctx context.Context, op string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar colección %s: %w", c.key, err)
	}
	if err := c.blobs.Put(ctx, c.key, data); err != nil {
		c.logFailure(op, err)
		return fmt.Errorf("guardar colección %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T, P]) logFailure(op string, err error) {
	if c.opts.log == nil {
		return
	}
	c.opts.log.Error().Err(err).Str("collection", c.key).Str("op", op).Msg("fallo de persistencia")
}

func (c *Collection[T, P]) observe(op string, err error) {
	if c.opts.observer != nil {
		c.opts.observer.Observe(c.key, op, err)
	}
}

func index[T any, P Record[T]](items []T) map[string]int {
	idx := make(map[string]int, len(items))
	for i := range items {
		idx[P(&items[i]).Base().ID] = i
	}
	return idx
}
