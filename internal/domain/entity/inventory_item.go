package entity

import "github.com/shopspring/decimal"

// Categorías de inventario.
const (
	CategoryFeed       = "feed"
	CategoryMedication = "medication"
	CategoryEquipment  = "equipment"
	CategoryOther      = "other"
)

// InventoryItem artículo con existencias. Quantity es la fuente de verdad; el kardex es solo auditoría.
type InventoryItem struct {
	Meta
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
}
