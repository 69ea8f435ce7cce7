package inventory

import (
	"github.com/jhoicas/farm-ledger/internal/application/dto"
	"github.com/jhoicas/farm-ledger/internal/application/usecase"
	"github.com/jhoicas/farm-ledger/internal/domain/entity"
	"github.com/jhoicas/farm-ledger/internal/domain/ledger"
	"github.com/jhoicas/farm-ledger/internal/domain/repository"
)

// ItemUseCase CRUD de artículos de inventario.
type ItemUseCase = usecase.Registry[entity.InventoryItem, dto.InventoryItemRequest]

// NewItemUseCase construye el caso de uso. last_restocked vacío toma la fecha de hoy al crear
// y conserva la anterior al editar.
func NewItemUseCase(repo repository.Collection[entity.InventoryItem], audit usecase.AuditRecorder, today func() string) *ItemUseCase {
	return usecase.NewRegistry(repo, audit, usecase.RegistryDef[entity.InventoryItem, dto.InventoryItemRequest]{
		Subject: "INVENTORY_ITEM",
		Noun:    "inventory item",
		Build: func(in dto.InventoryItemRequest, existing *entity.InventoryItem) (entity.InventoryItem, error) {
			restocked := in.LastRestocked
			if restocked == "" {
				if existing != nil {
					restocked = existing.LastRestocked
				} else {
					restocked = today()
				}
			}
			return entity.InventoryItem{
				Name:          in.Name,
				Category:      in.Category,
				Quantity:      in.Quantity,
				Unit:          in.Unit,
				ReorderLevel:  in.ReorderLevel,
				UnitPrice:     in.UnitPrice,
				Supplier:      in.Supplier,
				LastRestocked: restocked,
				ExpiryDate:    in.ExpiryDate,
				Notes:         in.Notes,
			}, nil
		},
		Describe: func(it entity.InventoryItem) string { return it.Name },
	})
}

// ToItemView agrega los campos derivados (stock bajo, valor total).
func ToItemView(it entity.InventoryItem) dto.InventoryItemView {
	return dto.InventoryItemView{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		ReorderLevel:  it.ReorderLevel,
		UnitPrice:     it.UnitPrice,
		Supplier:      it.Supplier,
		LastRestocked: it.LastRestocked,
		ExpiryDate:    it.ExpiryDate,
		Notes:         it.Notes,
		IsLowStock:    ledger.IsLowStock(it),
		TotalValue:    ledger.LineTotal(it.Quantity, it.UnitPrice),
	}
}
