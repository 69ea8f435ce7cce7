package audit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/application/audit"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

var admin = &entity.Actor{UserID: "u-1", Username: "admin", Role: entity.RoleAdmin}

func newRecorder(opts ...audit.Option) (*audit.Recorder, *collection.Collection[entity.AuditLog, *entity.AuditLog]) {
	logs := collection.New[entity.AuditLog](memory.NewStore(), repository.KeyAuditLogs)
	return audit.NewRecorder(logs, logger.Nop(), opts...), logs
}

func TestRecord_SinActorNoRegistra(t *testing.T) {
	rec, logs := newRecorder()
	require.NoError(t, rec.Record(context.Background(), nil, "CREATE_BATCH", "Created batch: B-1"))

	items, err := logs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecord_AnteponeYGuardaDatos(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	hits := 0
	rec, _ := newRecorder(audit.WithClock(func() time.Time { return fixed }), audit.WithHook(func() { hits++ }))

	require.NoError(t, rec.Record(ctx, admin, "CREATE_BATCH", "Created batch: B-1"))
	require.NoError(t, rec.Record(ctx, admin, "DELETE_BATCH", "Deleted batch: B-1"))

	items, err := rec.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "DELETE_BATCH", items[0].Action, "la más reciente primero")
	assert.Equal(t, "admin", items[0].Username)
	assert.Equal(t, "u-1", items[0].UserID)
	assert.Equal(t, fixed, items[0].Timestamp)
	assert.Equal(t, 2, hits)
}

func TestRecord_TopeDesalojaLaMasAntigua(t *testing.T) {
	ctx := context.Background()
	rec, _ := newRecorder()

	for i := 0; i < audit.DefaultLimit+1; i++ {
		require.NoError(t, rec.Record(ctx, admin, "LOGIN", fmt.Sprintf("entrada %d", i)))
	}

	items, err := rec.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, audit.DefaultLimit)
	assert.Equal(t, "entrada 1000", items[0].Details)
	assert.Equal(t, "entrada 1", items[len(items)-1].Details, "la entrada 0 fue desalojada")
}

func TestList_Busqueda(t *testing.T) {
	ctx := context.Background()
	rec, _ := newRecorder(audit.WithLimit(10))
	require.NoError(t, rec.Record(ctx, admin, "CREATE_CUSTOMER", "Created customer: Acme"))
	require.NoError(t, rec.Record(ctx, &entity.Actor{UserID: "u-2", Username: "pedro"}, "LOGIN", "User logged in"))

	got, err := rec.List(ctx, "  ACME ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CREATE_CUSTOMER", got[0].Action)

	got, err = rec.List(ctx, "pedro")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
