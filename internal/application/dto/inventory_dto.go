package dto

import "github.com/shopspring/decimal"

// InventoryItemRequest body para POST/PUT /api/inventory/items.
type InventoryItemRequest struct {
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category" validate:"required,oneof=feed medication equipment other"`
	Quantity      decimal.Decimal `json:"quantity" validate:"gte=0"`
	Unit          string          `json:"unit" validate:"required"`
	ReorderLevel  decimal.Decimal `json:"reorder_level" validate:"gte=0"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Supplier      string          `json:"supplier"`
	LastRestocked string          `json:"last_restocked" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate    string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string          `json:"notes"`
}

// InventoryTransactionRequest body para POST /api/inventory/items/:id/transactions.
// UnitCost opcional en entradas: recalcula el precio unitario por promedio ponderado.
type InventoryTransactionRequest struct {
	Type     string           `json:"type" validate:"required,oneof=in out"`
	Quantity decimal.Decimal  `json:"quantity" validate:"gt=0"`
	Reason   string           `json:"reason" validate:"required"`
	Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
	UnitCost *decimal.Decimal `json:"unit_cost" validate:"omitempty,gte=0"`
	Notes    string           `json:"notes"`
}

// InventoryItemView artículo con sus campos derivados.
type InventoryItemView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Supplier      string          `json:"supplier"`
	LastRestocked string          `json:"last_restocked"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
	Notes         string          `json:"notes"`
	IsLowStock    bool            `json:"is_low_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// ReconcileLineDTO diferencia entre el stock almacenado y el neto del kardex.
type ReconcileLineDTO struct {
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	StoredQuantity decimal.Decimal `json:"stored_quantity"`
	LedgerIn       decimal.Decimal `json:"ledger_in"`
	LedgerOut      decimal.Decimal `json:"ledger_out"`
	LedgerNet      decimal.Decimal `json:"ledger_net"`
	Drift          decimal.Decimal `json:"drift"` // stored − net
}

// ReplenishmentSuggestionDTO artículo a reponer con cantidad y costo estimados.
type ReplenishmentSuggestionDTO struct {
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	ReorderLevel   decimal.Decimal `json:"reorder_level"`
	SuggestedQty   decimal.Decimal `json:"suggested_qty"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	Consumed30Days decimal.Decimal `json:"consumed_30_days"`
	Supplier       string          `json:"supplier"`
}
