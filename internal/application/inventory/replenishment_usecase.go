package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// consumptionWindowDays ventana de salidas usada para priorizar la reposición.
const consumptionWindowDays = 30

// ReplenishmentUseCase genera la lista de reposición de los artículos con stock bajo.
type ReplenishmentUseCase struct {
	items        repository.Lister[entity.InventoryItem]
	transactions repository.Lister[entity.InventoryTransaction]
	now          func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(items repository.Lister[entity.InventoryItem], transactions repository.Lister[entity.InventoryTransaction]) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{items: items, transactions: transactions, now: time.Now}
}

// GenerateReplenishmentList devuelve los artículos en o bajo su nivel de reorden con la cantidad
// sugerida (hasta 1.5 × nivel de reorden) y su consumo de los últimos 30 días.
// Orden: mayor consumo primero, luego mayor faltante.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	window := ledger.TrailingDays(uc.now(), consumptionWindowDays)
	consumed := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type == entity.TransactionOut && window.Contains(t.Date) {
			consumed[t.ItemID] = consumed[t.ItemID].Add(t.Quantity)
		}
	}

	factor := decimal.NewFromFloat(1.5)
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, it := range items {
		if !ledger.IsLowStock(it) {
			continue
		}
		suggested := it.ReorderLevel.Mul(factor).Sub(it.Quantity)
		if suggested.LessThan(decimal.Zero) {
			suggested = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:         it.ID,
			ItemName:       it.Name,
			Category:       it.Category,
			Unit:           it.Unit,
			CurrentStock:   it.Quantity,
			ReorderLevel:   it.ReorderLevel,
			SuggestedQty:   suggested,
			EstimatedCost:  suggested.Mul(it.UnitPrice),
			Consumed30Days: consumed[it.ID],
			Supplier:       it.Supplier,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		if c := suggestions[i].Consumed30Days.Cmp(suggestions[j].Consumed30Days); c != 0 {
			return c > 0
		}
		return suggestions[i].SuggestedQty.GreaterThan(suggestions[j].SuggestedQty)
	})
	return suggestions, nil
}
