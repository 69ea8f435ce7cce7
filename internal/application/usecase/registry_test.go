package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/application/audit"
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/collection"
	"github.com/jhoicas/farm-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/farm-ledger/pkg/logger"
)

var (
	actor   = &entity.Actor{UserID: "u-1", Username: "maria", Role: entity.RoleUser}
	created = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRecorder(store repository.BlobStore) *audit.Recorder {
	return audit.NewRecorder(collection.New[entity.AuditLog](store, repository.KeyAuditLogs), logger.Nop())
}

func actions(t *testing.T, rec *audit.Recorder) []string {
	t.Helper()
	logs, err := rec.List(context.Background(), "")
	require.NoError(t, err)
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Action+": "+l.Details)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de un registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_CicloDeVida(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	rec := newRecorder(store)
	repo := collection.New[entity.Flock](store, repository.KeyFlocks, collection.WithClock(func() time.Time { return created }))
	uc := usecase.NewFlockUseCase(repo, rec)

	f, err := uc.Create(ctx, actor, dto.FlockRequest{Name: "Galpón 1", Quantity: 300, HatchDate: "2024-01-10", Status: "active"})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "u-1", f.CreatedBy)
	assert.Equal(t, created, f.CreatedAt)

	other := &entity.Actor{UserID: "u-2", Username: "pedro"}
	upd, err := uc.Update(ctx, other, f.ID, dto.FlockRequest{Name: "Galpón 1", Quantity: 280, HatchDate: "2024-01-10", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, 280, upd.Quantity)
	assert.Equal(t, f.ID, upd.ID)
	assert.Equal(t, "u-1", upd.CreatedBy, "el sobre no cambia al editar")

	got, err := uc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, upd, got)

	require.NoError(t, uc.Delete(ctx, actor, f.ID))
	_, err = uc.Get(ctx, f.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, uc.Delete(ctx, actor, f.ID), "eliminar un id inexistente no es error")

	assert.Equal(t, []string{
		"DELETE_FLOCK: Deleted flock: Galpón 1",
		"UPDATE_FLOCK: Updated flock: Galpón 1",
		"CREATE_FLOCK: Created flock: Galpón 1",
	}, actions(t, rec))
}

func TestRegistry_ListaEnOrdenDeAlta(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewMortalityUseCase(collection.New[entity.Mortality](store, repository.KeyMortality), newRecorder(store))

	for _, cause := range []string{"calor", "enfermedad", "depredador"} {
		_, err := uc.Create(ctx, actor, dto.MortalityRequest{Date: "2024-03-01", Quantity: 1, Cause: cause})
		require.NoError(t, err)
	}
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "calor", list[0].Cause)
	assert.Equal(t, "depredador", list[2].Cause)
}

func TestRegistry_SinActor(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewFlockUseCase(collection.New[entity.Flock](store, repository.KeyFlocks), newRecorder(store))

	_, err := uc.Create(ctx, nil, dto.FlockRequest{Name: "x", HatchDate: "2024-01-10", Status: "active"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, uc.Delete(ctx, nil, "x"), domain.ErrUnauthorized)
}

func TestRegistry_UpdateInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewFlockUseCase(collection.New[entity.Flock](store, repository.KeyFlocks), newRecorder(store))

	_, err := uc.Update(context.Background(), actor, "nada", dto.FlockRequest{Name: "x", HatchDate: "2024-01-10", Status: "active"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas y derivados
// ──────────────────────────────────────────────────────────────────────────────

func TestBatch_ActualNoSuperaInicial(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	rec := newRecorder(store)
	uc := usecase.NewBatchUseCase(collection.New[entity.Batch](store, repository.KeyBatches), rec)

	_, err := uc.Create(ctx, actor, dto.BatchRequest{
		BatchNumber: "B-1", InitialQuantity: 100, CurrentQuantity: 101, DateReceived: "2024-03-01", Status: "active",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"current_quantity"}, verr.Fields)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, actions(t, rec), "una validación fallida no se audita")

	b, err := uc.Create(ctx, actor, dto.BatchRequest{
		BatchNumber: "B-1", InitialQuantity: 100, CurrentQuantity: 100, DateReceived: "2024-03-01", Status: "active",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, b.CurrentQuantity)
}

func TestValidacion_CamposRequeridos(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewFlockUseCase(collection.New[entity.Flock](store, repository.KeyFlocks), newRecorder(store))

	_, err := uc.Create(context.Background(), actor, dto.FlockRequest{Quantity: -1, HatchDate: "10/01/2024", Status: "perdido"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"name", "quantity", "hatch_date", "status"}, verr.Fields)
}

func TestVentas_TotalCalculado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	rec := newRecorder(store)
	birds := usecase.NewBirdSaleUseCase(collection.New[entity.BirdSale](store, repository.KeyBirdSales), rec)
	eggs := usecase.NewEggSaleUseCase(collection.New[entity.EggSale](store, repository.KeyEggSales), rec)
	purchases := usecase.NewPurchaseUseCase(collection.New[entity.Purchase](store, repository.KeyPurchases), rec)

	b, err := birds.Create(ctx, actor, dto.BirdSaleRequest{Date: "2024-03-01", Quantity: 12, PricePerBird: d("7.25"), Buyer: "Acme"})
	require.NoError(t, err)
	assert.True(t, b.TotalAmount.Equal(d("87")), "total %s", b.TotalAmount)

	e, err := eggs.Create(ctx, actor, dto.EggSaleRequest{Date: "2024-03-01", Quantity: 3, PricePerCrate: d("4.5"), Buyer: "Sol"})
	require.NoError(t, err)
	assert.True(t, e.TotalAmount.Equal(d("13.5")))

	p, err := purchases.Create(ctx, actor, dto.PurchaseRequest{Date: "2024-03-01", Item: "Maíz", Quantity: d("2.5"), UnitPrice: d("3.2")})
	require.NoError(t, err)
	assert.True(t, p.TotalAmount.Equal(d("8")), "cantidades fraccionarias")

	// El total se recalcula al editar aunque el cliente no lo envíe.
	b, err = birds.Update(ctx, actor, b.ID, dto.BirdSaleRequest{Date: "2024-03-01", Quantity: 10, PricePerBird: d("7.25"), Buyer: "Acme"})
	require.NoError(t, err)
	assert.True(t, b.TotalAmount.Equal(d("72.5")))

	assert.Equal(t, "UPDATE_BIRD_SALE: Updated bird sale: 10 birds to Acme", actions(t, rec)[0])
}

func TestClientes_NombresRepetidosPermitidos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewCustomerUseCase(collection.New[entity.Customer](store, repository.KeyCustomers), newRecorder(store))

	for i := 0; i < 2; i++ {
		_, err := uc.Create(ctx, actor, dto.CustomerRequest{Name: "Acme", CustomerType: "business"})
		require.NoError(t, err)
	}
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)

	_, err = uc.Create(ctx, actor, dto.CustomerRequest{Name: "Mal", Email: "no-es-email", CustomerType: "business"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
