package dto

import "github.com/shopspring/decimal"

// BirdSaleRequest body para POST/PUT /api/bird-sales.
type BirdSaleRequest struct {
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity     int             `json:"quantity" validate:"gt=0"`
	PricePerBird decimal.Decimal `json:"price_per_bird" validate:"gte=0"`
	Buyer        string          `json:"buyer" validate:"required"`
	Notes        string          `json:"notes"`
}

// EggSaleRequest body para POST/PUT /api/egg-sales. Quantity en cubetas.
type EggSaleRequest struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity      int             `json:"quantity" validate:"gt=0"`
	PricePerCrate decimal.Decimal `json:"price_per_crate" validate:"gte=0"`
	Buyer         string          `json:"buyer" validate:"required"`
	Notes         string          `json:"notes"`
}

// PurchaseRequest body para POST/PUT /api/purchases.
type PurchaseRequest struct {
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Item      string          `json:"item" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Supplier  string          `json:"supplier"`
	Notes     string          `json:"notes"`
}
