package entity

import "github.com/shopspring/decimal"

// FeedItem existencia de alimento comprada a un proveedor.
type FeedItem struct {
	Meta
	FeedType     string          `json:"feed_type"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	PurchaseDate string          `json:"purchase_date"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	Notes        string          `json:"notes"`
}
