package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/infrastructure/scheduler"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

type countingArchiver struct {
	calls atomic.Int32
	err   error
}

func (a *countingArchiver) ArchiveWeeklySummary(context.Context) (string, error) {
	a.calls.Add(1)
	return "reports/summary-2024-03-10.csv", a.err
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := scheduler.New("cada lunes", &countingArchiver{}, logger.Nop())
	assert.Error(t, err)
}

func TestScheduler_EjecutaArchivo(t *testing.T) {
	arch := &countingArchiver{}
	s, err := scheduler.New("@every 1s", arch, nil)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return arch.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestScheduler_ErrorNoDetieneElCron(t *testing.T) {
	arch := &countingArchiver{err: errors.New("s3 caído")}
	s, err := scheduler.New("@every 1s", arch, logger.Nop())
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return arch.calls.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)
	s.Stop(context.Background())
}
