package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInvoiceTotals(t *testing.T) {
	items := []entity.InvoiceItem{
		{Description: "Cubeta de huevos", Quantity: d("2"), UnitPrice: d("10")},
		{Description: "Cubeta de huevos", Quantity: d("1"), UnitPrice: d("5")},
	}
	ledger.PriceItems(items)
	assert.True(t, items[0].Total.Equal(d("20")))

	got := ledger.InvoiceTotals(items, d("10"))
	assert.True(t, got.Subtotal.Equal(d("25")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Tax.Equal(d("2.5")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(d("27.5")), "total %s", got.Total)
}

func TestInvoiceTotals_SinLineas(t *testing.T) {
	got := ledger.InvoiceTotals(nil, d("10"))
	assert.True(t, got.Total.IsZero())
}

func TestMortalityRate(t *testing.T) {
	assert.Equal(t, 0.0, ledger.MortalityRate(0, 0), "inicial 0 no divide por cero")
	assert.InDelta(t, 20.0, ledger.MortalityRate(100, 80), 1e-9)
	assert.InDelta(t, 0.0, ledger.MortalityRate(50, 50), 1e-9)
}

func TestHeadTotal(t *testing.T) {
	assert.True(t, ledger.HeadTotal(12, d("4.25")).Equal(d("51")))
}

func TestInventoryValue(t *testing.T) {
	items := []entity.InventoryItem{
		{Quantity: d("10"), UnitPrice: d("2.5")},
		{Quantity: d("3"), UnitPrice: d("100")},
	}
	assert.True(t, ledger.InventoryValue(items).Equal(d("325")))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, ledger.IsLowStock(entity.InventoryItem{Quantity: d("5"), ReorderLevel: d("5")}), "igual al nivel de reorden es bajo")
	assert.False(t, ledger.IsLowStock(entity.InventoryItem{Quantity: d("6"), ReorderLevel: d("5")}))
}

func TestIsLowFeed(t *testing.T) {
	assert.True(t, ledger.IsLowFeed(entity.FeedItem{QuantityKg: d("99.9")}))
	assert.False(t, ledger.IsLowFeed(entity.FeedItem{QuantityKg: d("100")}), "100 kg exactos no es bajo")
}

func TestExpiry(t *testing.T) {
	today := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	assert.True(t, ledger.IsExpiring("2024-03-01", today), "vence hoy")
	assert.True(t, ledger.IsExpiring("2024-03-31", today))
	assert.False(t, ledger.IsExpiring("2024-04-01", today))
	assert.False(t, ledger.IsExpiring("", today))
	assert.True(t, ledger.IsExpired("2024-02-29", today))
	assert.False(t, ledger.IsExpired("2024-03-01", today))
}

func TestWeightedAverageCost(t *testing.T) {
	got := ledger.WeightedAverageCost(d("10"), d("2"), d("10"), d("4"))
	assert.True(t, got.Equal(d("3")))
	assert.True(t, ledger.WeightedAverageCost(d("0"), d("0"), d("0"), d("4")).IsZero())
}

func TestDateRange_Inclusivo(t *testing.T) {
	r, err := ledger.NewDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.True(t, r.Contains("2024-01-01"), "incluye el inicio")
	assert.True(t, r.Contains("2024-01-31"), "incluye el fin")
	assert.False(t, r.Contains("2024-02-01"))
	assert.False(t, r.Contains("2023-12-31"))
	assert.False(t, r.Contains("no-es-fecha"))
	assert.Equal(t, "2024-01-01 to 2024-01-31", r.String())
}

func TestDateRange_Invalido(t *testing.T) {
	_, err := ledger.NewDateRange("2024-02-01", "2024-01-01")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = ledger.NewDateRange("01/01/2024", "2024-01-01")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestTrailingDays(t *testing.T) {
	r := ledger.TrailingDays(time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), 7)
	assert.True(t, r.Contains("2024-03-03"))
	assert.True(t, r.Contains("2024-03-10"))
	assert.False(t, r.Contains("2024-03-02"))
	assert.False(t, r.Contains("2024-03-11"))
}

func TestSameBuyer(t *testing.T) {
	assert.True(t, ledger.SameBuyer("  acme ", "ACME"))
	assert.True(t, ledger.SameBuyer("Granja ÁGUILA", "granja águila"))
	assert.False(t, ledger.SameBuyer("Acme S.A.", "Acme"))
}
