// Package audit mantiene la bitácora acotada de acciones de los usuarios.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// DefaultLimit número máximo de entradas conservadas.
const DefaultLimit = 1000

// Recorder antepone entradas a la bitácora y descarta las más antiguas al superar el límite.
type Recorder struct {
	repo     repository.Collection[entity.AuditLog]
	log      *logger.Logger
	limit    int
	now      func() time.Time
	newID    func() string
	onRecord func()
}

// Option configura el Recorder.
type Option func(*Recorder)

// WithLimit cambia el tope de entradas.
func WithLimit(n int) Option { return func(r *Recorder) { r.limit = n } }

// WithClock fija el reloj de las marcas de tiempo.
func WithClock(now func() time.Time) Option { return func(r *Recorder) { r.now = now } }

// WithHook se invoca tras cada entrada escrita (métricas).
func WithHook(fn func()) Option { return func(r *Recorder) { r.onRecord = fn } }

// NewRecorder construye el caso de uso.
func NewRecorder(repo repository.Collection[entity.AuditLog], log *logger.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		repo:  repo,
		log:   log,
		limit: DefaultLimit,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.limit <= 0 {
		r.limit = DefaultLimit
	}
	return r
}

// Record agrega una entrada al inicio. Sin actor no registra nada.
func (r *Recorder) Record(ctx context.Context, actor *entity.Actor, action, details string) error {
	if actor == nil {
		return nil
	}
	now := r.now().UTC()
	entry := entity.AuditLog{
		Meta:      entity.Meta{ID: r.newID(), CreatedBy: actor.UserID, CreatedAt: now},
		UserID:    actor.UserID,
		Username:  actor.Username,
		Action:    action,
		Details:   details,
		Timestamp: now,
	}
	err := r.repo.Apply(ctx, func(items []entity.AuditLog) ([]entity.AuditLog, error) {
		out := make([]entity.AuditLog, 0, len(items)+1)
		out = append(out, entry)
		out = append(out, items...)
		if len(out) > r.limit {
			out = out[:r.limit]
		}
		return out, nil
	})
	if err != nil {
		r.log.Warn().Err(err).Str("action", action).Str("user", actor.Username).Msg("no se pudo registrar auditoría")
		return fmt.Errorf("registrar auditoría %s: %w", action, err)
	}
	if r.onRecord != nil {
		r.onRecord()
	}
	return nil
}

// List entradas más recientes primero; search filtra sin distinguir mayúsculas por usuario, acción o detalle.
func (r *Recorder) List(ctx context.Context, search string) ([]entity.AuditLog, error) {
	items, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items, nil
	}
	out := make([]entity.AuditLog, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Username), q) ||
			strings.Contains(strings.ToLower(e.Action), q) ||
			strings.Contains(strings.ToLower(e.Details), q) {
			out = append(out, e)
		}
	}
	return out, nil
}
