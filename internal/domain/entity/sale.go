package entity

import "github.com/shopspring/decimal"

// BirdSale venta de aves en pie.
type BirdSale struct {
	Meta
	Date         string          `json:"date"`
	Quantity     int             `json:"quantity"`
	PricePerBird decimal.Decimal `json:"price_per_bird"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Buyer        string          `json:"buyer"`
	Notes        string          `json:"notes"`
}

// EggSale venta de huevos por cubeta.
type EggSale struct {
	Meta
	Date          string          `json:"date"`
	Quantity      int             `json:"quantity"`
	PricePerCrate decimal.Decimal `json:"price_per_crate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Buyer         string          `json:"buyer"`
	Notes         string          `json:"notes"`
}
