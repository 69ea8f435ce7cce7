package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento de inventario.
const (
	TransactionIn  = "in"
	TransactionOut = "out"
)

// InventoryTransaction entrada del kardex de inventario (más reciente primero).
type InventoryTransaction struct {
	Meta
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Type     string          `json:"type"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes"`
}
