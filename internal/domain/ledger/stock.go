package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/domain/entity"
)

// LowFeedThresholdKg por debajo de este peso un alimento se considera bajo.
var LowFeedThresholdKg = decimal.NewFromInt(100)

// ExpiringWindowDays días de anticipación para marcar un vencimiento próximo.
const ExpiringWindowDays = 30

// IsLowStock cantidad ≤ nivel de reorden.
func IsLowStock(item entity.InventoryItem) bool {
	return item.Quantity.LessThanOrEqual(item.ReorderLevel)
}

// IsLowFeed cantidad estrictamente menor a 100 kg.
func IsLowFeed(f entity.FeedItem) bool {
	return f.QuantityKg.LessThan(LowFeedThresholdKg)
}

// DaysToExpiry días de calendario desde today hasta expiry. ok=false si no hay fecha válida.
func DaysToExpiry(expiry string, today time.Time) (days int, ok bool) {
	if expiry == "" {
		return 0, false
	}
	t, err := entity.ParseDate(expiry)
	if err != nil {
		return 0, false
	}
	return int(t.Sub(entity.CivilDate(today)).Hours() / 24), true
}

// IsExpiring vence dentro de los próximos 30 días (incluye hoy).
func IsExpiring(expiry string, today time.Time) bool {
	d, ok := DaysToExpiry(expiry, today)
	return ok && d >= 0 && d <= ExpiringWindowDays
}

// IsExpired la fecha de vencimiento ya pasó.
func IsExpired(expiry string, today time.Time) bool {
	d, ok := DaysToExpiry(expiry, today)
	return ok && d < 0
}
