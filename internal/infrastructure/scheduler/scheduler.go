// Package scheduler ejecuta tareas periódicas (archivo del resumen semanal) con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/farm-ledger/pkg/logger"
)

// jobTimeout tiempo máximo de una ejecución.
const jobTimeout = 2 * time.Minute

// Archiver genera y guarda el resumen; devuelve la clave escrita.
type Archiver interface {
	ArchiveWeeklySummary(ctx context.Context) (string, error)
}

// Scheduler administra las tareas programadas.
type Scheduler struct {
	cron     *cron.Cron
	archiver Archiver
	log      *logger.Logger
}

// New programa el archivo del resumen con la expresión cron estándar (5 campos o descriptores @every/@weekly).
func New(schedule string, archiver Archiver, log *logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Scheduler{cron: cron.New(), archiver: archiver, log: log}
	if _, err := s.cron.AddFunc(schedule, s.archiveSummary); err != nil {
		return nil, fmt.Errorf("scheduler: expresión cron inválida %q: %w", schedule, err)
	}
	return s, nil
}

// Start inicia el cron en segundo plano.
func (s *Scheduler) Start() {
	s.log.Info().Msg("iniciando scheduler")
	s.cron.Start()
}

// Stop detiene el cron y espera a que termine la tarea en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	s.log.Info().Msg("deteniendo scheduler")
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: tarea en curso sin terminar al apagar")
	}
}

func (s *Scheduler) archiveSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	key, err := s.archiver.ArchiveWeeklySummary(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudo archivar el resumen semanal")
		return
	}
	s.log.Info().Str("key", key).Msg("resumen semanal archivado")
}
