package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// TransactionUseCase registra entradas y salidas sobre los artículos y las asienta en el kardex.
//
// El artículo se modifica bajo el candado de su colección; el kardex y la auditoría se escriben
// después. Si esas escrituras fallan el stock ya quedó modificado (no hay transacción entre colecciones).
type TransactionUseCase struct {
	items        repository.Collection[entity.InventoryItem]
	transactions repository.Collection[entity.InventoryTransaction]
	audit        usecase.AuditRecorder
	now          func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	items repository.Collection[entity.InventoryItem],
	transactions repository.Collection[entity.InventoryTransaction],
	audit usecase.AuditRecorder,
) *TransactionUseCase {
	return &TransactionUseCase{items: items, transactions: transactions, audit: audit, now: time.Now}
}

// Apply registra un movimiento sobre itemID.
// in: suma la cantidad y fija last_restocked; con unit_cost recalcula el precio por promedio ponderado.
// out: ErrInsufficientStock si la cantidad supera la existencia; el artículo no cambia.
func (uc *TransactionUseCase) Apply(ctx context.Context, actor *entity.Actor, itemID string, in dto.InventoryTransactionRequest) (entity.InventoryTransaction, error) {
	if actor == nil {
		return entity.InventoryTransaction{}, domain.ErrUnauthorized
	}
	if err := dto.Validate(in); err != nil {
		return entity.InventoryTransaction{}, err
	}

	var item entity.InventoryItem
	err := uc.items.Apply(ctx, func(items []entity.InventoryItem) ([]entity.InventoryItem, error) {
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			switch in.Type {
			case entity.TransactionIn:
				if in.UnitCost != nil {
					items[i].UnitPrice = ledger.WeightedAverageCost(items[i].Quantity, items[i].UnitPrice, in.Quantity, *in.UnitCost)
				}
				items[i].Quantity = items[i].Quantity.Add(in.Quantity)
				items[i].LastRestocked = in.Date
			case entity.TransactionOut:
				if in.Quantity.GreaterThan(items[i].Quantity) {
					return nil, fmt.Errorf("%w: disponible %s %s, solicitado %s",
						domain.ErrInsufficientStock, items[i].Quantity, items[i].Unit, in.Quantity)
				}
				items[i].Quantity = items[i].Quantity.Sub(in.Quantity)
			}
			item = items[i]
			return items, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return entity.InventoryTransaction{}, err
	}

	tx := entity.InventoryTransaction{
		Meta:     entity.Meta{ID: uuid.New().String(), CreatedBy: actor.UserID, CreatedAt: uc.now().UTC()},
		ItemID:   item.ID,
		ItemName: item.Name,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Date:     in.Date,
		Notes:    in.Notes,
	}
	err = uc.transactions.Apply(ctx, func(txs []entity.InventoryTransaction) ([]entity.InventoryTransaction, error) {
		return append([]entity.InventoryTransaction{tx}, txs...), nil
	})
	if err != nil {
		return entity.InventoryTransaction{}, fmt.Errorf("asentar movimiento en kardex: %w", err)
	}

	if uc.audit != nil {
		verb := "Added"
		if in.Type == entity.TransactionOut {
			verb = "Removed"
		}
		_ = uc.audit.Record(ctx, actor, entity.ActionInventoryTransaction,
			fmt.Sprintf("%s %s %s of %s", verb, in.Quantity, item.Unit, item.Name))
	}
	return tx, nil
}

// ListTransactions kardex más reciente primero; itemID vacío devuelve todos.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, itemID string) ([]entity.InventoryTransaction, error) {
	txs, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	if itemID == "" {
		return txs, nil
	}
	out := make([]entity.InventoryTransaction, 0, len(txs))
	for _, t := range txs {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Reconcile compara, por artículo, el stock almacenado con el neto del kardex. No corrige nada:
// el stock almacenado es la fuente de verdad y la cantidad inicial de cada artículo no pasa por el kardex.
func (uc *TransactionUseCase) Reconcile(ctx context.Context) ([]dto.ReconcileLineDTO, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	type sums struct{ in, out decimal.Decimal }
	byItem := make(map[string]*sums, len(items))
	for _, t := range txs {
		s, ok := byItem[t.ItemID]
		if !ok {
			s = &sums{}
			byItem[t.ItemID] = s
		}
		if t.Type == entity.TransactionIn {
			s.in = s.in.Add(t.Quantity)
		} else {
			s.out = s.out.Add(t.Quantity)
		}
	}
	out := make([]dto.ReconcileLineDTO, 0, len(items))
	for _, it := range items {
		s := byItem[it.ID]
		if s == nil {
			s = &sums{}
		}
		net := s.in.Sub(s.out)
		out = append(out, dto.ReconcileLineDTO{
			ItemID:         it.ID,
			ItemName:       it.Name,
			StoredQuantity: it.Quantity,
			LedgerIn:       s.in,
			LedgerOut:      s.out,
			LedgerNet:      net,
			Drift:          it.Quantity.Sub(net),
		})
	}
	return out, nil
}
